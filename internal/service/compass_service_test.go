package service_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dinesh-manogaran/Career-Compass/internal/model"
	"github.com/dinesh-manogaran/Career-Compass/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginExtractsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"a@x.com","password":"p1"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer"}`))
	}))
	defer srv.Close()

	svc := service.NewCompassServiceWithBaseURL(srv.URL)
	token, err := svc.Login(context.Background(), "a@x.com", "p1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestLoginRejectionCarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid email or password"}`))
	}))
	defer srv.Close()

	svc := service.NewCompassServiceWithBaseURL(srv.URL)
	_, err := svc.Login(context.Background(), "a@x.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", service.Detail(err))
	assert.True(t, service.IsSessionLoss(err))
}

func TestLoginMissingTokenIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	svc := service.NewCompassServiceWithBaseURL(srv.URL)
	_, err := svc.Login(context.Background(), "a@x.com", "p1")
	require.Error(t, err)
	// A malformed success body is a transport-class failure, not a rejection.
	assert.Empty(t, service.Detail(err))
	assert.False(t, service.IsSessionLoss(err))
}

func TestRegisterSuccessAndFailure(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"detail":"Email already registered"}`))
		} else {
			_, _ = w.Write([]byte(`{"email":"a@x.com"}`))
		}
	}))
	defer srv.Close()

	svc := service.NewCompassServiceWithBaseURL(srv.URL)
	require.NoError(t, svc.Register(context.Background(), "a@x.com", "p1"))

	status = http.StatusBadRequest
	err := svc.Register(context.Background(), "a@x.com", "p1")
	require.Error(t, err)
	assert.Equal(t, "Email already registered", service.Detail(err))
	assert.False(t, service.IsSessionLoss(err))
}

func TestAnalyzeMatchSendsMultipartWithBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze_match_upload", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(16<<20))
		jd, jdHeader, err := r.FormFile("jd_file")
		require.NoError(t, err)
		defer jd.Close()
		assert.Equal(t, "jd.txt", jdHeader.Filename)
		jdBytes, _ := io.ReadAll(jd)
		assert.Equal(t, "need python", string(jdBytes))

		_, _, err = r.FormFile("resume_file")
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"score":8,"rating":"Strong Match","matched_skills":["Python","SQL"],"missing_skills":["Docker"],"gaps":["g1"],"tip":"t"}`))
	}))
	defer srv.Close()

	jd := &model.UploadedDocument{Name: "jd.txt", SizeBytes: 11, Data: []byte("need python")}
	resume := &model.UploadedDocument{Name: "resume.txt", SizeBytes: 9, Data: []byte("python sql")}

	svc := service.NewCompassServiceWithBaseURL(srv.URL)
	result, err := svc.AnalyzeMatch(context.Background(), "tok-1", jd, resume)
	require.NoError(t, err)
	assert.Equal(t, 8.0, result.Score)
	assert.Equal(t, []string{"Python", "SQL"}, result.MatchedSkills)
	assert.Equal(t, []string{"Docker"}, result.MissingSkills)
}

func TestAnalyzeMatchExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid or expired token"}`))
	}))
	defer srv.Close()

	jd := &model.UploadedDocument{Name: "jd.txt", Data: []byte("x")}
	resume := &model.UploadedDocument{Name: "r.txt", Data: []byte("y")}

	svc := service.NewCompassServiceWithBaseURL(srv.URL)
	_, err := svc.AnalyzeMatch(context.Background(), "stale", jd, resume)
	require.Error(t, err)
	assert.True(t, service.IsSessionLoss(err))
}

func TestCareerQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/career_query", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"question":"how do I start?"}`, string(body))
		_, _ = w.Write([]byte(`{"answer":"build projects"}`))
	}))
	defer srv.Close()

	svc := service.NewCompassServiceWithBaseURL(srv.URL)
	answer, err := svc.CareerQuery(context.Background(), "how do I start?")
	require.NoError(t, err)
	assert.Equal(t, "build projects", answer)
}

func TestCareerQueryTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	svc := service.NewCompassServiceWithBaseURL(srv.URL)
	_, err := svc.CareerQuery(context.Background(), "anything")
	require.Error(t, err)
	assert.Empty(t, service.Detail(err))
}
