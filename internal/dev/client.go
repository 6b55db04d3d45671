package dev

// ReloadClientScript is the browser module referenced by the development
// block of the client manifest. The generated code calls connect(port)
// once; the module reconnects with backoff and renders an overlay for
// generation errors.
const ReloadClientScript = `let socket = null;
let delay = 1000;
const maxDelay = 30000;
const overlayID = 'routegen-error-overlay';

export function connect(port) {
	if (socket) return;

	const protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
	socket = new WebSocket(protocol + '//' + location.hostname + ':' + port + '` + ReloadPath + `');

	socket.onopen = () => {
		delay = 1000;
	};

	socket.onmessage = (e) => {
		let msg;
		try {
			msg = JSON.parse(e.data);
		} catch (err) {
			return;
		}

		switch (msg.type) {
			case 'reload':
				console.log('[routegen] reloading');
				location.reload();
				break;
			case 'error':
				console.error('[routegen] manifest error:', msg.error);
				showOverlay(msg.error);
				break;
			case 'clear':
				clearOverlay();
				break;
		}
	};

	socket.onclose = () => {
		socket = null;
		setTimeout(() => {
			delay = Math.min(delay * 2, maxDelay);
			connect(port);
		}, delay);
	};

	socket.onerror = () => {
		socket.close();
	};
}

function showOverlay(error) {
	clearOverlay();

	const overlay = document.createElement('div');
	overlay.id = overlayID;
	overlay.style.cssText = 'position:fixed;inset:0;background:rgba(0,0,0,0.9);color:#fff;font-family:monospace;font-size:14px;padding:20px;overflow:auto;z-index:999999;';

	const title = document.createElement('h2');
	title.style.cssText = 'color:#ff5555;margin:0 0 20px;';
	title.textContent = 'Route manifest error';

	const pre = document.createElement('pre');
	pre.style.cssText = 'white-space:pre-wrap;background:#1a1a1a;padding:20px;border-radius:8px;border:1px solid #333;';
	pre.textContent = error;

	overlay.appendChild(title);
	overlay.appendChild(pre);
	document.body.appendChild(overlay);
}

function clearOverlay() {
	const overlay = document.getElementById(overlayID);
	if (overlay) overlay.remove();
}
`
