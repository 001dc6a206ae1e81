package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"miniapp-studio/internal/handlers"
)

var _ = Describe("Admin settings", func() {
	var (
		env     *handlers.Env
		handler http.Handler
	)

	BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		env = newEnv()
		env.AdminUser = "admin"
		env.AdminPasswordHash = string(hash)
		env.SetTelegram("old-token", "-1")

		handler = env.RequireAdmin(http.HandlerFunc(env.HandleAdminSettings))
	})

	call := func(method, body, user, pass string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/api/admin/settings", strings.NewReader(body))
		if user != "" {
			req.SetBasicAuth(user, pass)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	DescribeTable("rejects bad credentials",
		func(user, pass string) {
			rec := call(http.MethodGet, "", user, pass)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Header().Get("WWW-Authenticate")).To(ContainSubstring("Basic"))
		},
		Entry("no credentials", "", ""),
		Entry("wrong password", "admin", "nope"),
		Entry("wrong user", "root", "s3cret"),
	)

	It("is disabled without a password hash", func() {
		env.AdminPasswordHash = ""
		Expect(call(http.MethodGet, "", "admin", "s3cret").Code).To(Equal(http.StatusForbidden))
	})

	It("never returns the bot token", func() {
		rec := call(http.MethodGet, "", "admin", "s3cret")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).NotTo(ContainSubstring("old-token"))

		var s handlers.AdminSettings
		Expect(json.Unmarshal(rec.Body.Bytes(), &s)).To(Succeed())
		Expect(s.TelegramBotTokenSet).To(BeTrue())
		Expect(s.TelegramChatID).To(Equal("-1"))
	})

	It("updates only the fields that were sent", func() {
		rec := call(http.MethodPost, `{"telegramChatId":"-100500"}`, "admin", "s3cret")
		Expect(rec.Code).To(Equal(http.StatusOK), rec.Body.String())

		var s handlers.AdminSettings
		Expect(json.Unmarshal(rec.Body.Bytes(), &s)).To(Succeed())
		Expect(s.TelegramChatID).To(Equal("-100500"))
		Expect(s.TelegramBotTokenSet).To(BeTrue())
	})

	It("rejects other methods", func() {
		Expect(call(http.MethodDelete, "", "admin", "s3cret").Code).To(Equal(http.StatusMethodNotAllowed))
	})
})

var _ = Describe("Health", func() {
	It("reports ok without a database", func() {
		env := newEnv()
		rec := httptest.NewRecorder()
		env.HandleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring(`"status":"ok"`))
		Expect(rec.Body.String()).To(ContainSubstring(`"database":"disabled"`))
	})
})

var _ = Describe("HashPassword", func() {
	It("produces a hash RequireAdmin accepts", func() {
		hash, err := handlers.HashPassword("s3cret")
		Expect(err).NotTo(HaveOccurred())
		Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret"))).To(Succeed())
	})
})
