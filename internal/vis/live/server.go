package live

import (
	"context"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/elektrokombinacija/kivavis/internal/vis/engine"
)

const shutdownGrace = 2 * time.Second

var upgrader = websocket.Upgrader{}

// Server is the HTTP side of the live view.
type Server struct {
	Hub   *Hub
	Title string

	router *mux.Router
}

// NewServer routes the page, the websocket and the latest frame.
func NewServer(hub *Hub, title string) *Server {
	s := &Server{Hub: hub, Title: title, router: mux.NewRouter()}
	s.router.HandleFunc("/", s.servePage).Methods(http.MethodGet)
	s.router.HandleFunc("/ws", s.serveWebsocket)
	s.router.HandleFunc("/frame.png", s.serveFrame).Methods(http.MethodGet)
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, s.Title); err != nil {
		log.Printf("[WARN] live: page: %v", err)
	}
}

func (s *Server) serveFrame(w http.ResponseWriter, r *http.Request) {
	u := s.Hub.Latest()
	if u == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(u.PNG)
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WARN] live: upgrade: %v", err)
		return
	}
	defer conn.Close()

	updates, unsubscribe := s.Hub.Subscribe()
	defer unsubscribe()

	c := &client{conn: conn, updates: updates}
	if err := c.sync(r.Context()); err != nil && r.Context().Err() == nil {
		log.Printf("[INFO] live: client %s left: %v", r.RemoteAddr, err)
	}
}

// Options configures Serve.
type Options struct {
	Addr     string
	Announce bool
	DPI      float64
}

// Serve runs eng and serves its frames on opts.Addr until ctx is done or
// either side fails.
func Serve(ctx context.Context, eng *engine.Engine, opts Options) error {
	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return err
	}

	hub := NewHub()
	srv := NewServer(hub, "kivavis")
	httpSrv := &http.Server{Handler: srv.Handler()}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := httpSrv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	group.Go(func() error {
		return eng.Run(groupCtx, NewSink(hub, eng.Layout, opts.DPI))
	})

	if opts.Announce {
		port := ln.Addr().(*net.TCPAddr).Port
		a, err := Announce(port)
		if err != nil {
			log.Printf("[WARN] live: %v", err)
		} else {
			defer a.Shutdown()
		}
	}

	log.Printf("[INFO] live view on http://%s", ln.Addr())
	return group.Wait()
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.}}</title>
<style>
body { background: #1e1e23; color: #ddd; font-family: monospace; margin: 1em; }
#frame { max-width: 100%; background: #fff; }
</style>
</head>
<body>
<div id="status">connecting...</div>
<img id="frame" src="/frame.png" alt="warehouse">
<script>
const status = document.getElementById("status");
const frame = document.getElementById("frame");
const proto = location.protocol === "https:" ? "wss://" : "ws://";
const ws = new WebSocket(proto + location.host + "/ws");
ws.onmessage = function (event) {
	const u = JSON.parse(event.data);
	frame.src = "data:image/png;base64," + u.png;
	status.textContent = u.mode + " | step " + u.step + " | active " + u.active +
		" | picking " + u.picking + " | completed " + u.completed;
};
ws.onclose = function () { status.textContent = "disconnected"; };
</script>
</body>
</html>
`))
