package web

// pageHTML is the self-contained viewer: it opens a websocket, sizes the
// canvas from the init message, then applies per-cell repaints frame by
// frame. Agent markers are drawn on top and restored from the palette when
// the agent moves on, mirroring how the engine repaints vacated cells.
const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { background: #222; color: #ddd; font-family: monospace; text-align: center; }
  canvas { image-rendering: pixelated; margin-top: 1em; background: #fff; }
</style>
</head>
<body>
<div id="status">connecting…</div>
<canvas id="field"></canvas>
<script>
(function () {
  var canvas = document.getElementById("field");
  var status = document.getElementById("status");
  var ctx = canvas.getContext("2d");
  var palette = [];
  var agentColor = "#c80000";
  var scale = 1;

  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");

  function cell(x, y, style) {
    ctx.fillStyle = style;
    ctx.fillRect(x * scale, y * scale, scale, scale);
  }

  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "init") {
      palette = msg.palette;
      agentColor = msg.agent;
      scale = msg.scale;
      canvas.width = msg.width * scale;
      canvas.height = msg.height * scale;
      ctx.fillStyle = palette[0];
      ctx.fillRect(0, 0, canvas.width, canvas.height);
      status.textContent = msg.name + " | tick 0";
      return;
    }
    var i;
    for (i = 0; i < msg.paints.length; i++) {
      var p = msg.paints[i];
      cell(p.x, p.y, palette[p.s]);
    }
    for (i = 0; i < msg.agents.length; i++) {
      cell(msg.agents[i][0], msg.agents[i][1], agentColor);
    }
    status.textContent = (msg.active ? "" : "halted | ") + "tick " + msg.tick;
  };

  ws.onclose = function () {
    status.textContent += " (disconnected)";
  };
})();
</script>
</body>
</html>
`
