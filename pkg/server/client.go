package server

import (
	"crypto/sha256"
	"fmt"
	"net/http"
)

// clientJS is the thin browser client. It owns no application logic: it
// applies the operation stream to the real DOM and forwards listened
// events back, mirroring the wire format in pkg/protocol.
const clientJS = `(function () {
  "use strict";

  var nodes = new Map();
  var listeners = new Map();
  var sessionId = null;
  var ws = null;

  function uvarint(buf, pos) {
    var x = 0, s = 0;
    for (;;) {
      var b = buf[pos.i++];
      if (b < 0x80) return x + b * Math.pow(2, s);
      x += (b & 0x7f) * Math.pow(2, s);
      s += 7;
    }
  }

  function str(buf, pos) {
    var n = uvarint(buf, pos);
    var out = new TextDecoder().decode(buf.subarray(pos.i, pos.i + n));
    pos.i += n;
    return out;
  }

  function putUvarint(out, x) {
    while (x >= 0x80) { out.push((x & 0x7f) | 0x80); x = Math.floor(x / 128); }
    out.push(x);
  }

  function putStr(out, s) {
    var b = new TextEncoder().encode(s);
    putUvarint(out, b.length);
    for (var i = 0; i < b.length; i++) out.push(b[i]);
  }

  function sendEvent(id, type, data) {
    var out = [0x01];
    putUvarint(out, id);
    putStr(out, type);
    var keys = Object.keys(data);
    putUvarint(out, keys.length);
    keys.forEach(function (k) { putStr(out, k); putStr(out, data[k]); });
    ws.send(new Uint8Array(out));
  }

  function eventData(type, ev) {
    var d = {};
    var t = ev.target;
    if (t && "value" in t) d.value = String(t.value);
    if (t && "checked" in t) d.checked = String(t.checked);
    if (ev.key !== undefined) d.key = ev.key;
    return d;
  }

  function listen(id, type) {
    var node = nodes.get(id);
    if (!node) return;
    var key = id + ":" + type;
    if (listeners.has(key)) return;
    var fn = function (ev) {
      if (type === "submit") ev.preventDefault();
      sendEvent(id, type, eventData(type, ev));
    };
    listeners.set(key, fn);
    node.addEventListener(type, fn);
  }

  function unlisten(id, type) {
    var key = id + ":" + type;
    var fn = listeners.get(key);
    var node = nodes.get(id);
    if (fn && node) node.removeEventListener(type, fn);
    listeners.delete(key);
  }

  function applyOps(buf, pos) {
    uvarint(buf, pos); // seq
    var count = uvarint(buf, pos);
    var created = [];
    for (var i = 0; i < count; i++) {
      var code = buf[pos.i++];
      var id = uvarint(buf, pos);
      switch (code) {
        case 0x01: { var n = document.createElement(str(buf, pos)); nodes.set(id, n); created.push(id); break; }
        case 0x02: { nodes.set(id, document.createTextNode(str(buf, pos))); created.push(id); break; }
        case 0x03: { var v = str(buf, pos); var n3 = nodes.get(id); if (n3) n3.textContent = v; break; }
        case 0x04: { var a = str(buf, pos), av = str(buf, pos); var n4 = nodes.get(id); if (n4) n4.setAttribute(a, av); break; }
        case 0x05: { var r5 = str(buf, pos); var n5 = nodes.get(id); if (n5) n5.removeAttribute(r5); break; }
        case 0x06: {
          var parent = nodes.get(uvarint(buf, pos));
          var refId = uvarint(buf, pos);
          var ref = refId ? nodes.get(refId) : null;
          var n6 = nodes.get(id);
          if (parent && n6) parent.insertBefore(n6, ref || null);
          break;
        }
        case 0x07: { var n7 = nodes.get(id); if (n7 && n7.parentNode) n7.parentNode.removeChild(n7); break; }
        case 0x08: { listen(id, str(buf, pos)); break; }
        case 0x09: { unlisten(id, str(buf, pos)); break; }
        default: return;
      }
    }
    // The root element is created but never inserted; it replaces the
    // server-rendered placeholder.
    created.forEach(function (id) {
      var n = nodes.get(id);
      if (n && !n.parentNode && n.nodeType === 1 && n.getAttribute("id") === "app") {
        var placeholder = document.getElementById("app");
        if (placeholder && placeholder !== n) placeholder.replaceWith(n);
      }
    });
  }

  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var url = proto + location.host + "/_pulse/ws";
    if (sessionId) url += "?session=" + encodeURIComponent(sessionId);
    ws = new WebSocket(url);
    ws.binaryType = "arraybuffer";

    ws.onmessage = function (msg) {
      var buf = new Uint8Array(msg.data);
      var pos = { i: 1 };
      switch (buf[0]) {
        case 0x00: { uvarint(buf, pos); sessionId = str(buf, pos); break; }
        case 0x02: applyOps(buf, pos); break;
      }
    };

    ws.onclose = function () { setTimeout(connect, 1000); };
  }

  connect();
})();
`

var clientETag = func() string {
	sum := sha256.Sum256([]byte(clientJS))
	return fmt.Sprintf("%q", fmt.Sprintf("%x", sum[:8]))
}()

func (s *Server) serveClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("ETag", clientETag)
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=0, must-revalidate")

	if r.Header.Get("If-None-Match") == clientETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Write([]byte(clientJS))
}
