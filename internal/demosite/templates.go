package demosite

import (
	"fmt"
	"html"
	"net/http"

	"github.com/gin-gonic/gin"
)

const pageLayout = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%s</title>
</head>
<body>
<div id="content">
%s
</div>
</body>
</html>`

func render(c *gin.Context, title, body string) {
	page := fmt.Sprintf(pageLayout, html.EscapeString(title), body)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func flashHTML(class, message string) string {
	if message == "" {
		return ""
	}
	return fmt.Sprintf(`<div id="flash" class="flash %s">%s</div>`,
		html.EscapeString(class), html.EscapeString(message))
}

const loginBody = `<h2>Login Page</h2>
<form id="login" method="post" action="/authenticate">
  <div>
    <label for="username">Username</label>
    <input type="text" name="username" id="username">
  </div>
  <div>
    <label for="password">Password</label>
    <input type="password" name="password" id="password">
  </div>
  <button class="radius" type="submit">Login</button>
</form>`

const secureBody = `<h2>Secure Area</h2>
<p class="subheader">Welcome to the Secure Area. When you are done click logout below.</p>
<a class="button secondary radius" href="/logout">Logout</a>`

const checkboxesBody = `<h3>Checkboxes</h3>
<form id="checkboxes">
  <input type="checkbox"> checkbox 1<br>
  <input type="checkbox" checked> checkbox 2
</form>`

const todoBody = `<h3>TODO</h3>
<section id="todoapp">
  <input id="new-todo" placeholder="What needs to be done?" autofocus>
  <ul id="todo-list"></ul>
  <footer>
    <span id="todo-count">0</span> items left
    <button id="clear-completed">Clear completed</button>
  </footer>
</section>
<script>
(function () {
  var input = document.getElementById('new-todo');
  var list = document.getElementById('todo-list');
  var count = document.getElementById('todo-count');
  var clear = document.getElementById('clear-completed');

  function refresh() {
    count.textContent = String(list.querySelectorAll('li:not(.completed)').length);
  }

  input.addEventListener('keydown', function (e) {
    if (e.key !== 'Enter') return;
    var text = input.value.trim();
    if (!text) return;

    var li = document.createElement('li');
    var toggle = document.createElement('input');
    toggle.type = 'checkbox';
    toggle.className = 'toggle';
    var label = document.createElement('label');
    label.textContent = text;

    toggle.addEventListener('change', function () {
      li.classList.toggle('completed', toggle.checked);
      refresh();
    });

    li.appendChild(toggle);
    li.appendChild(label);
    list.appendChild(li);
    input.value = '';
    refresh();
  });

  clear.addEventListener('click', function () {
    list.querySelectorAll('li.completed').forEach(function (li) { li.remove(); });
    refresh();
  });
})();
</script>`
