package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"muaiadhadad.me/portfolio/internal/http/handler"
)

var _ = Describe("PresignHandler", func() {
	var (
		router *gin.Engine
		signer *mockSigner
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		signer = &mockSigner{}
		h := handler.NewPresignHandler(signer)
		router.GET("/api/presign", h.Sign)
	})

	get := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("decodes the key and signs with a one hour validity", func() {
		w := get("/api/presign?key=a%20b.pdf")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(signer.keys).To(Equal([]string{"a b.pdf"}))
		Expect(signer.expiry).To(Equal(3600 * time.Second))

		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["url"]).To(ContainSubstring("signed"))
	})

	It("accepts keys with punctuation", func() {
		w := get("/api/presign?key=CV%20(final)%2C%20v2.pdf")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(signer.keys).To(Equal([]string{"CV (final), v2.pdf"}))
	})

	It("preserves plus signs in keys", func() {
		w := get("/api/presign?key=c%2B%2B.pdf")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(signer.keys).To(Equal([]string{"c++.pdf"}))
	})

	It("returns 400 without calling the signer when the key is missing", func() {
		w := get("/api/presign")

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(signer.keys).To(BeEmpty())
	})

	It("maps a signing failure to the fixed error code", func() {
		signer.signFn = func(_ context.Context, _ string, _ time.Duration) (string, error) {
			return "", errors.New("access denied")
		}

		w := get("/api/presign?key=file.pdf")

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(ContainSubstring("presign_failed"))
	})

	It("returns 503 when storage is not configured", func() {
		h := handler.NewPresignHandler(nil)
		router = gin.New()
		router.GET("/api/presign", h.Sign)

		w := get("/api/presign?key=file.pdf")
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})
})
