package auth

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/furnimed/catalog-admin/internal/user"
)

var _ = ginkgo.Describe("Auth Handler", func() {
	var (
		handler  *Handler
		mockRepo *mockUserRepository
		store    *MemorySessionStore
	)

	const cookieName = "session_id"

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		store = NewMemorySessionStore()
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := NewService(mockRepo, store, bcrypt.MinCost, time.Hour, slogger)
		handler = NewHandler(service, cookieName, time.Hour)
	})

	ginkgo.AfterEach(func() {
		_ = store.Close()
	})

	login := func(username, password string) *httptest.ResponseRecorder {
		body := `{"username":"` + username + `","password":"` + password + `"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		w := httptest.NewRecorder()
		handler.Login(w, req)
		return w
	}

	sessionCookie := func(w *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range w.Result().Cookies() {
			if c.Name == cookieName {
				return c
			}
		}
		return nil
	}

	ginkgo.Describe("Login", func() {
		ginkgo.BeforeEach(func() {
			mockRepo.addUser("admin", "Q1!qqqqqq", user.RoleAdmin)
		})

		ginkgo.It("should set an HttpOnly session cookie on success", func() {
			w := login("admin", "Q1!qqqqqq")
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

			cookie := sessionCookie(w)
			gomega.Expect(cookie).NotTo(gomega.BeNil())
			gomega.Expect(cookie.Value).NotTo(gomega.BeEmpty())
			gomega.Expect(cookie.HttpOnly).To(gomega.BeTrue())
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring(`"role":"admin"`))
		})

		ginkgo.It("should not leak the session id in the body", func() {
			w := login("admin", "Q1!qqqqqq")
			cookie := sessionCookie(w)
			gomega.Expect(w.Body.String()).NotTo(gomega.ContainSubstring(cookie.Value))
		})

		ginkgo.It("should return 400 without a cookie on bad credentials", func() {
			w := login("admin", "wrong")
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(sessionCookie(w)).To(gomega.BeNil())
		})

		ginkgo.It("should return 400 on a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{not json"))
			w := httptest.NewRecorder()
			handler.Login(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should return 201 on success", func() {
			body := `{"username":"bob","password":"hunter2"}`
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.Register(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
		})

		ginkgo.It("should return 400 on a duplicate username", func() {
			mockRepo.addUser("bob", "hunter2", user.RoleUser)

			body := `{"username":"bob","password":"hunter2"}`
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.Register(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring("Username already exists"))
		})

		ginkgo.It("should return 400 on missing fields", func() {
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(`{"username":"bob"}`))
			w := httptest.NewRecorder()
			handler.Register(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusBadRequest))
		})
	})

	ginkgo.Describe("RequireSession", func() {
		var protected http.Handler

		ginkgo.BeforeEach(func() {
			protected = handler.RequireSession(http.HandlerFunc(handler.Protected))
		})

		ginkgo.It("should return 401 without a cookie", func() {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should return 401 for an unknown session id", func() {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.AddCookie(&http.Cookie{Name: cookieName, Value: "stale"})
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should expose the session identity with a live cookie", func() {
			mockRepo.addUser("admin", "Q1!qqqqqq", user.RoleAdmin)
			cookie := sessionCookie(login("admin", "Q1!qqqqqq"))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.AddCookie(cookie)
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(w.Body.String()).To(gomega.ContainSubstring(`"username":"admin"`))
		})
	})

	ginkgo.Describe("RequireAdmin", func() {
		var gated http.Handler

		ginkgo.BeforeEach(func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			gated = handler.RequireSession(handler.RequireAdmin(next))
		})

		ginkgo.It("should return 403 for a non-admin session", func() {
			mockRepo.addUser("bob", "hunter2", user.RoleUser)
			cookie := sessionCookie(login("bob", "hunter2"))

			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			req.AddCookie(cookie)
			w := httptest.NewRecorder()
			gated.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("should pass an admin session through", func() {
			mockRepo.addUser("admin", "Q1!qqqqqq", user.RoleAdmin)
			cookie := sessionCookie(login("admin", "Q1!qqqqqq"))

			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			req.AddCookie(cookie)
			w := httptest.NewRecorder()
			gated.ServeHTTP(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("should expire the cookie and destroy the session", func() {
			mockRepo.addUser("admin", "Q1!qqqqqq", user.RoleAdmin)
			cookie := sessionCookie(login("admin", "Q1!qqqqqq"))

			req := httptest.NewRequest(http.MethodGet, "/logout", nil)
			req.AddCookie(cookie)
			w := httptest.NewRecorder()
			handler.Logout(w, req)

			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
			expired := sessionCookie(w)
			gomega.Expect(expired).NotTo(gomega.BeNil())
			gomega.Expect(expired.MaxAge).To(gomega.BeNumerically("<", 0))

			_, err := store.Get(context.Background(), cookie.Value)
			gomega.Expect(err).To(gomega.MatchError(ErrSessionNotFound))
		})

		ginkgo.It("should succeed without a cookie", func() {
			req := httptest.NewRequest(http.MethodGet, "/logout", nil)
			w := httptest.NewRecorder()
			handler.Logout(w, req)
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		})
	})
})
