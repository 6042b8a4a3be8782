package preview

import (
	"fmt"
	"net/http"

	"github.com/vango-dev/transitiongate/pkg/vdom"
)

// clientScript keeps #stage in sync with frames pushed over /ws.
const clientScript = `
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            var status = document.getElementById('status');
            switch (msg.type) {
                case 'frame':
                    document.getElementById('stage').innerHTML = msg.frame.html;
                    status.textContent = msg.frame.atMs + 'ms ' +
                        (msg.frame.isExit ? 'exiting' : 'entered') +
                        (msg.frame.pending ? ' (' + msg.frame.pending + ' pending)' : '');
                    break;
                case 'error':
                    status.textContent = msg.error;
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    connect();
})();
`

// stylesheet animates the configured enter and exit classes over the
// configured exit duration.
func (s *Server) stylesheet() string {
	ms := s.config.Gate.ExitDurationMs
	css := "body{font-family:system-ui,sans-serif;margin:2rem}" +
		"#status{color:#666;font-family:monospace}" +
		"@keyframes tg-in{from{opacity:0}to{opacity:1}}" +
		"@keyframes tg-out{from{opacity:1}to{opacity:0}}"
	if c := s.config.Gate.EnterClass; c != "" {
		css += fmt.Sprintf(".%s{animation:tg-in %dms ease-out}", c, ms)
	}
	if c := s.config.Gate.ExitClass; c != "" {
		css += fmt.Sprintf(".%s{animation:tg-out %dms ease-in forwards}", c, ms)
	}
	return css
}

// page renders the preview document around the latest frame.
func (s *Server) page() *vdom.VNode {
	f := s.LastFrame()
	return vdom.Html(
		vdom.Lang("en"),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Title("transitiongate preview"),
			vdom.Style(vdom.Raw(s.stylesheet())),
		),
		vdom.Body(
			vdom.Header(vdom.H1("transitiongate preview")),
			vdom.Main(
				vdom.Div(vdom.ID("stage"), vdom.AriaLive("polite"), vdom.Raw(f.HTML)),
			),
			vdom.Footer(vdom.P(vdom.ID("status"))),
			vdom.Script(vdom.Raw(clientScript)),
		),
	)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte("<!DOCTYPE html>")); err != nil {
		return
	}
	if err := s.renderer.RenderToWriter(w, s.page()); err != nil {
		s.logger.Error("render page", "error", err)
	}
}
