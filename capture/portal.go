package capture

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

const (
	portalBusName    = "org.freedesktop.portal.Desktop"
	portalObjectPath = "/org/freedesktop/portal/desktop"
	screenshotMethod = "org.freedesktop.portal.Screenshot.Screenshot"
	requestInterface = "org.freedesktop.portal.Request"
	responseMember   = "Response"
	responseSignal   = requestInterface + "." + responseMember
	requestPathBase  = "/org/freedesktop/portal/desktop/request"
)

// requestPhase tracks the asynchronous call/correlate/await flow. The
// Screenshot call's direct reply only acknowledges receipt; the real outcome
// arrives later as a Response signal on the handle path.
type requestPhase int

const (
	phaseAwaitingAck requestPhase = iota
	phaseAwaitingSignal
	phaseResolved
	phaseFailed
)

// PortalCapturer drives the org.freedesktop.portal.Screenshot protocol over
// the session bus. The portal shows its own interactive region selector.
type PortalCapturer struct {
	conn *dbus.Conn
}

func NewPortalCapturer() (*PortalCapturer, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return &PortalCapturer{conn: conn}, nil
}

func (p *PortalCapturer) CaptureRegion(ctx context.Context) (string, error) {
	req := newPortalRequest(p.conn)
	uri, err := req.run(ctx)
	if err != nil {
		return "", err
	}
	return uriToPath(uri)
}

type portalRequest struct {
	conn    *dbus.Conn
	token   string
	handle  dbus.ObjectPath
	phase   requestPhase
	signals chan *dbus.Signal
}

func newPortalRequest(conn *dbus.Conn) *portalRequest {
	token := newHandleToken()
	return &portalRequest{
		conn:    conn,
		token:   token,
		handle:  expectedHandlePath(senderID(conn.Names()[0]), token),
		phase:   phaseAwaitingAck,
		signals: make(chan *dbus.Signal, 4),
	}
}

// newHandleToken returns the random correlation token embedded into the
// request handle path.
func newHandleToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// senderID sanitizes a unique bus name (":1.42") into the form the portal
// uses when it builds request handle paths ("1_42").
func senderID(uniqueName string) string {
	return strings.ReplaceAll(strings.TrimPrefix(uniqueName, ":"), ".", "_")
}

func expectedHandlePath(sender, token string) dbus.ObjectPath {
	return dbus.ObjectPath(requestPathBase + "/" + sender + "/" + token)
}

func (r *portalRequest) run(ctx context.Context) (string, error) {
	// Subscribe before calling: the Response signal may fire before the
	// method reply is processed.
	if err := r.subscribe(r.handle); err != nil {
		r.phase = phaseFailed
		return "", err
	}
	r.conn.Signal(r.signals)
	defer r.conn.RemoveSignal(r.signals)
	defer func() { r.unsubscribe(r.handle) }()

	if err := r.call(ctx); err != nil {
		return "", err
	}
	return r.await(ctx)
}

func (r *portalRequest) subscribe(handle dbus.ObjectPath) error {
	err := r.conn.AddMatchSignal(
		dbus.WithMatchObjectPath(handle),
		dbus.WithMatchInterface(requestInterface),
		dbus.WithMatchMember(responseMember),
	)
	if err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

func (r *portalRequest) unsubscribe(handle dbus.ObjectPath) {
	_ = r.conn.RemoveMatchSignal(
		dbus.WithMatchObjectPath(handle),
		dbus.WithMatchInterface(requestInterface),
		dbus.WithMatchMember(responseMember),
	)
}

func (r *portalRequest) call(ctx context.Context) error {
	options := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(r.token),
		"interactive":  dbus.MakeVariant(true),
	}

	obj := r.conn.Object(portalBusName, portalObjectPath)
	call := obj.CallWithContext(ctx, screenshotMethod, 0, "", options)
	if call.Err != nil {
		r.phase = phaseFailed
		return &TransportError{Err: call.Err}
	}

	var acked dbus.ObjectPath
	if err := call.Store(&acked); err != nil {
		r.phase = phaseFailed
		return &ProtocolError{Reason: "screenshot ack did not carry a request handle"}
	}
	if acked != r.handle {
		// Older portals ignore handle_token and mint their own handle.
		// Follow the acknowledged path so the correlation still holds.
		log.Printf("capture: portal re-homed request handle to %s", acked)
		if err := r.subscribe(acked); err != nil {
			r.phase = phaseFailed
			return err
		}
		r.unsubscribe(r.handle)
		r.handle = acked
	}
	r.phase = phaseAwaitingSignal
	return nil
}

func (r *portalRequest) await(ctx context.Context) (string, error) {
	for {
		select {
		case <-ctx.Done():
			r.phase = phaseFailed
			return "", &TransportError{Err: ctx.Err()}
		case sig, ok := <-r.signals:
			if !ok {
				r.phase = phaseFailed
				return "", &TransportError{Err: errors.New("signal stream closed")}
			}
			if sig == nil || sig.Name != responseSignal || sig.Path != r.handle {
				continue
			}
			uri, err := decodeResponse(sig.Body)
			if err != nil {
				r.phase = phaseFailed
				return "", err
			}
			r.phase = phaseResolved
			return uri, nil
		}
	}
}

// decodeResponse unpacks the (uint32 status, map results) payload of a
// Request.Response signal. A non-zero status means the user cancelled or the
// portal refused the request.
func decodeResponse(body []interface{}) (string, error) {
	if len(body) < 2 {
		return "", &ProtocolError{Reason: "response carried fewer than two values"}
	}
	status, ok := body[0].(uint32)
	if !ok {
		return "", &ProtocolError{Reason: "response status is not a uint32"}
	}
	if status != 0 {
		return "", ErrCancelled
	}
	results, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return "", &ProtocolError{Reason: "response results are not a variant map"}
	}
	uriVariant, ok := results["uri"]
	if !ok {
		return "", &ProtocolError{Reason: "response did not contain a uri"}
	}
	uri, ok := uriVariant.Value().(string)
	if !ok {
		return "", &ProtocolError{Reason: "uri is not a string"}
	}
	return uri, nil
}

// uriToPath turns the portal's file:// URI into a local filesystem path.
func uriToPath(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, "file://")
	if !ok {
		return "", &ProtocolError{Reason: "uri does not use the file scheme"}
	}
	path, err := url.PathUnescape(rest)
	if err != nil {
		return "", &ProtocolError{Reason: "uri path is not percent-decodable"}
	}
	return path, nil
}
