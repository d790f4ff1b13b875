// Package demosite — локальная копия демо-приложения (формы логина,
// чекбоксы, TODO), по которой гоняются e2e-тесты. Держим ее в репозитории,
// чтобы прогон не зависел от доступности публичного демо-сайта.
package demosite

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uiTests/internal/logger"
)

// Учетные данные единственного пользователя демо-приложения.
const (
	Username = "tomsmith"
	Password = "SuperSecretPassword!"
)

// Тексты flash-сообщений. Успех и ошибка выводятся в один и тот же
// регион #flash — так устроено само приложение.
const (
	FlashLoggedIn    = "You logged into a secure area!"
	FlashLoggedOut   = "You logged out of the secure area!"
	FlashBadUsername = "Your username is invalid!"
	FlashBadPassword = "Your password is invalid!"
	FlashMustLogin   = "You must login to view the secure area!"
)

const (
	flashCookie = "demosite_flash"
	authCookie  = "demosite_auth"
)

type Site struct {
	log *logger.Zap
}

func New(log *logger.Zap) *Site {
	if log == nil {
		log = logger.Nop()
	}
	return &Site{log: log}
}

// Handler собирает gin-роутер приложения. Тесты оборачивают его
// в httptest.Server, cmd запускает через Run.
func (s *Site) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// Простейший лог-мидлвар
	r.Use(func(c *gin.Context) {
		s.log.Debug("HTTP",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.Next()
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	r.GET("/login", s.loginPage)
	r.POST("/authenticate", s.authenticate)
	r.GET("/secure", s.securePage)
	r.GET("/logout", s.logout)
	r.GET("/checkboxes", s.checkboxesPage)
	r.GET("/todo", s.todoPage)

	return r
}

func (s *Site) Run(ctx context.Context, host, port string) error {
	addr := fmt.Sprintf("%s:%s", host, port)
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	s.log.Info("Демо-приложение запущено", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func setFlash(c *gin.Context, class, message string) {
	// gin экранирует значение cookie сам
	c.SetCookie(flashCookie, class+"|"+message, 60, "/", "", false, true)
}

// takeFlash читает и сразу гасит одноразовое flash-сообщение.
func takeFlash(c *gin.Context) (class, message string) {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return "", ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	for i := 0; i < len(raw); i++ {
		if raw[i] == '|' {
			return raw[:i], raw[i+1:]
		}
	}
	return "message", raw
}

func (s *Site) loginPage(c *gin.Context) {
	class, message := takeFlash(c)
	render(c, "Login Page", flashHTML(class, message)+loginBody)
}

func (s *Site) authenticate(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username != Username {
		setFlash(c, "error", FlashBadUsername)
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if password != Password {
		setFlash(c, "error", FlashBadPassword)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(authCookie, "1", 3600, "/", "", false, true)
	setFlash(c, "success", FlashLoggedIn)
	c.Redirect(http.StatusFound, "/secure")
}

func (s *Site) securePage(c *gin.Context) {
	if v, err := c.Cookie(authCookie); err != nil || v != "1" {
		setFlash(c, "error", FlashMustLogin)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	class, message := takeFlash(c)
	render(c, "Secure Area", flashHTML(class, message)+secureBody)
}

func (s *Site) logout(c *gin.Context) {
	c.SetCookie(authCookie, "", -1, "/", "", false, true)
	setFlash(c, "success", FlashLoggedOut)
	c.Redirect(http.StatusFound, "/login")
}

func (s *Site) checkboxesPage(c *gin.Context) {
	render(c, "Checkboxes", checkboxesBody)
}

func (s *Site) todoPage(c *gin.Context) {
	render(c, "TODO", todoBody)
}
