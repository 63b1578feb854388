package server

const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Company Intelligence</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; padding: 0 1em; }
input, button { font-size: 1em; padding: 0.4em 0.8em; }
.panel { border: 1px solid #ccc; border-radius: 6px; padding: 1em; margin-top: 1em; white-space: pre-wrap; }
.panel h2 { margin-top: 0; font-size: 1.1em; }
.hidden { display: none; }
</style>
</head>
<body>
<h1>Company Intelligence</h1>
<form id="report-form">
  <input id="company" name="company" placeholder="Company name, e.g. Apple" required>
  <button type="submit">Analyze</button>
</form>

<div id="overview" class="panel hidden"><h2>Stock &amp; News</h2><div class="body"></div></div>
<div id="analysis" class="panel hidden"><h2>Market Analysis</h2><div class="body"></div></div>
<div id="risks" class="panel hidden"><h2>Risk Factors</h2><div class="body"></div></div>

<h1>Knowledge Bot</h1>
<form id="chat-form">
  <input id="message" name="message" placeholder="Ask me anything" required>
  <button type="submit">Send</button>
</form>
<div id="chat" class="panel hidden"><h2>Conversation</h2><div class="body"></div></div>

<script>
const show = (id, text) => {
  const panel = document.getElementById(id);
  panel.classList.remove('hidden');
  panel.querySelector('.body').textContent = text;
};

document.getElementById('report-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const company = document.getElementById('company').value;
  show('overview', 'Running analysis...');
  const res = await fetch('/api/report', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({company}),
  });
  const data = await res.json();
  const news = (data.news || []).map(n => '- ' + n.headline + ' (' + n.source + ')').join('\n');
  const overview = [data.overview, news ? 'Recent Headlines:\n' + news : ''].filter(Boolean).join('\n\n');
  show('overview', overview || 'No data collected.');
  show('analysis', data.analysis || 'No analysis generated.');
  show('risks', 'Level: ' + data.risk_level + '\n' + (data.risks || []).map(r => '- ' + r).join('\n'));
});

document.getElementById('chat-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const input = document.getElementById('message');
  const message = input.value;
  input.value = '';
  const res = await fetch('/api/chat', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({message}),
  });
  const data = await res.json();
  const panel = document.getElementById('chat');
  panel.classList.remove('hidden');
  panel.querySelector('.body').textContent += 'You: ' + message + '\nBot: ' + data.reply + '\n\n';
});
</script>
</body>
</html>
`
