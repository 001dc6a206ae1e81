package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"miniapp-studio/internal/domain"
	"miniapp-studio/internal/handlers"
	"miniapp-studio/internal/session"
)

const contactURL = "https://t.me/nikita_delo"

type estimate struct {
	Step           int    `json:"step"`
	StepName       string `json:"stepName"`
	Progress       int    `json:"progress"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"totalFormatted"`
	ContactURL     string `json:"contactUrl"`
	Selection      struct {
		Features     []string `json:"features"`
		Design       string   `json:"design"`
		Integrations []string `json:"integrations"`
		Timeline     string   `json:"timeline"`
	} `json:"selection"`
	Breakdown []domain.LineItem `json:"breakdown"`
}

func newEnv() *handlers.Env {
	return &handlers.Env{
		Pricing:    domain.DefaultPricing(),
		Landing:    domain.DefaultLanding(contactURL),
		Sessions:   session.New(100, time.Minute),
		ContactURL: contactURL,
	}
}

// visitor носит cookie сессии между запросами
type visitor struct {
	cookie *http.Cookie
}

func (v *visitor) do(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	if v.cookie != nil {
		req.AddCookie(v.cookie)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "estimator_sid" {
			v.cookie = c
		}
	}
	return rec
}

func (v *visitor) act(env *handlers.Env, action, id string) *httptest.ResponseRecorder {
	body := `{"action":"` + action + `","id":"` + id + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/estimator/actions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return v.do(env.HandleEstimatorAction, req)
}

func decodeEstimate(rec *httptest.ResponseRecorder) estimate {
	var e estimate
	ExpectWithOffset(1, json.Unmarshal(rec.Body.Bytes(), &e)).To(Succeed())
	return e
}

var _ = Describe("Estimator API", func() {
	var (
		env *handlers.Env
		v   *visitor
	)

	BeforeEach(func() {
		env = newEnv()
		v = &visitor{}
	})

	It("starts a session with the default selection", func() {
		rec := v.do(env.HandleEstimator, httptest.NewRequest(http.MethodGet, "/api/estimator", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(v.cookie).NotTo(BeNil())
		Expect(v.cookie.HttpOnly).To(BeTrue())

		e := decodeEstimate(rec)
		Expect(e.Step).To(Equal(1))
		Expect(e.StepName).To(Equal("Функционал"))
		Expect(e.Progress).To(Equal(0))
		Expect(e.Total).To(Equal(int64(70000)))
		Expect(e.Selection.Design).To(Equal("standard"))
		Expect(e.Selection.Integrations).To(Equal([]string{"telegram"}))
		Expect(e.Selection.Timeline).To(Equal("standard"))
		Expect(e.ContactURL).To(Equal(contactURL))
		Expect(env.Sessions.Len()).To(Equal(1))
	})

	It("keeps the session between requests", func() {
		v.do(env.HandleEstimator, httptest.NewRequest(http.MethodGet, "/api/estimator", nil))
		first := v.cookie.Value

		Expect(v.act(env, "toggle_feature", "payments").Code).To(Equal(http.StatusOK))
		rec := v.do(env.HandleEstimator, httptest.NewRequest(http.MethodGet, "/api/estimator", nil))

		Expect(v.cookie.Value).To(Equal(first))
		Expect(decodeEstimate(rec).Total).To(Equal(int64(120000)))
		Expect(env.Sessions.Len()).To(Equal(1))
	})

	It("walks the full scenario to 245000", func() {
		steps := [][2]string{
			{"toggle_feature", "payments"},
			{"toggle_feature", "bot"},
			{"next", ""},
			{"set_design", "custom"},
			{"next", ""},
			{"toggle_integration", "crm"},
			{"next", ""},
			{"set_timeline", "urgent"},
			{"next", ""},
		}
		var rec *httptest.ResponseRecorder
		for _, s := range steps {
			rec = v.act(env, s[0], s[1])
			Expect(rec.Code).To(Equal(http.StatusOK), rec.Body.String())
		}

		e := decodeEstimate(rec)
		Expect(e.Step).To(Equal(5))
		Expect(e.Progress).To(Equal(100))
		Expect(e.Total).To(Equal(int64(245000)))
		Expect(e.TotalFormatted).To(HaveSuffix("₽"))

		var sum int64
		for _, it := range e.Breakdown {
			sum += it.Price
		}
		Expect(sum).To(Equal(e.Total))
	})

	It("keeps answers after reset", func() {
		v.act(env, "set_design", "custom")
		for i := 0; i < 4; i++ {
			v.act(env, "next", "")
		}
		e := decodeEstimate(v.act(env, "reset", ""))

		Expect(e.Step).To(Equal(1))
		Expect(e.Selection.Design).To(Equal("custom"))
		Expect(e.Total).To(Equal(int64(90000)))
	})

	It("never removes the telegram integration", func() {
		e := decodeEstimate(v.act(env, "toggle_integration", "telegram"))
		Expect(e.Selection.Integrations).To(ContainElement("telegram"))
	})

	DescribeTable("rejects bad actions without touching the session",
		func(body string) {
			v.act(env, "toggle_feature", "bot")

			req := httptest.NewRequest(http.MethodPost, "/api/estimator/actions", strings.NewReader(body))
			rec := v.do(env.HandleEstimatorAction, req)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring(`"error"`))

			e := decodeEstimate(v.do(env.HandleEstimator, httptest.NewRequest(http.MethodGet, "/api/estimator", nil)))
			Expect(e.Selection.Features).To(Equal([]string{"bot"}))
			Expect(e.Step).To(Equal(1))
		},
		Entry("unknown feature", `{"action":"toggle_feature","id":"blockchain"}`),
		Entry("unknown design", `{"action":"set_design","id":"brutalist"}`),
		Entry("unknown timeline", `{"action":"set_timeline","id":"yesterday"}`),
		Entry("unknown action", `{"action":"explode"}`),
		Entry("missing action", `{"id":"bot"}`),
		Entry("broken json", `{"action":`),
	)

	It("returns the price list and catalog", func() {
		rec := httptest.NewRecorder()
		env.HandlePricing(rec, httptest.NewRequest(http.MethodGet, "/api/pricing", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))

		var resp struct {
			Pricing struct {
				Base int64 `json:"base"`
			} `json:"pricing"`
			Steps     []domain.StepInfo `json:"steps"`
			StepNames []string          `json:"stepNames"`
		}
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Pricing.Base).To(Equal(int64(40000)))
		Expect(resp.Steps).To(HaveLen(4))
		Expect(resp.StepNames).To(Equal([]string{"Функционал", "Дизайн", "Интеграции", "Сроки", "Результат"}))
	})
})

var _ = Describe("Landing page", func() {
	var (
		env *handlers.Env
		v   *visitor
	)

	BeforeEach(func() {
		env = newEnv()
		v = &visitor{}
	})

	postForm := func(values url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/estimator", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return v.do(env.HandleEstimatorForm, req)
	}

	It("renders the landing with the estimator", func() {
		rec := v.do(env.HandleLanding, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(ContainSubstring("text/html"))
		body := rec.Body.String()
		Expect(body).To(ContainSubstring("MiniApp Studio"))
		Expect(body).To(ContainSubstring(`id="calculator"`))
		Expect(body).To(ContainSubstring(contactURL))
	})

	It("applies form posts and redirects back to the calculator", func() {
		rec := postForm(url.Values{"action": {"toggle_feature"}, "id": {"catalog"}})
		Expect(rec.Code).To(Equal(http.StatusSeeOther))
		Expect(rec.Header().Get("Location")).To(Equal("/#calculator"))

		for i := 0; i < 4; i++ {
			Expect(postForm(url.Values{"action": {"next"}}).Code).To(Equal(http.StatusSeeOther))
		}

		page := v.do(env.HandleLanding, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
		Expect(page).To(ContainSubstring("Получить точный расчет"))
		Expect(page).To(ContainSubstring(domain.FormatPrice(105000)))
	})

	It("rejects unknown form actions", func() {
		rec := postForm(url.Values{"action": {"set_design"}, "id": {"neon"}})
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("serves embedded static files", func() {
		rec := httptest.NewRecorder()
		handlers.StaticHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/styles.css", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))
	})
})
