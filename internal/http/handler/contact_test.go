package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"muaiadhadad.me/portfolio/internal/contact"
	"muaiadhadad.me/portfolio/internal/http/handler"
)

var _ = Describe("ContactHandler", func() {
	var (
		router *gin.Engine
		svc    *mockContactService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockContactService{}
		h := handler.NewContactHandler(svc)
		router.POST("/api/contact", h.Submit)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns success for a delivered submission", func() {
		w := post(`{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["success"]).To(BeTrue())

		Expect(svc.subs).To(HaveLen(1))
		Expect(svc.subs[0].Name).To(Equal("Ada"))
		Expect(svc.subs[0].Subject).To(Equal("Hi"))
	})

	It("maps a validation failure to 400", func() {
		svc.notifyFn = func(_ context.Context, _ contact.Submission) error {
			return contact.ErrMissingFields
		}

		w := post(`{"name":"Ada","message":"no email"}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring("Missing required fields"))
	})

	It("maps a delivery failure to 500", func() {
		svc.notifyFn = func(_ context.Context, _ contact.Submission) error {
			return errors.New("smtp down")
		}

		w := post(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`)

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("Failed to send message"))
	})

	It("passes the honeypot field through", func() {
		w := post(`{"name":"Bot","email":"bot@spam.example","message":"spam","_hp":"filled"}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.subs[0].Honeypot).To(Equal("filled"))
	})

	It("returns 400 on a malformed body without calling the service", func() {
		w := post(`{"name":`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(svc.subs).To(BeEmpty())
	})
})
