package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/community-pulse/cli/types"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// fakeUpstream is an in-process stand-in for the Community Pulse service.
// It issues real JWTs and mirrors the service's error shape: every
// failure body is {"detail": "..."}.
type fakeUpstream struct {
	t      *testing.T
	secret []byte
	srv    *httptest.Server

	mu            sync.Mutex
	users         map[string]*upstreamUser
	events        map[int]*types.Event
	registrations map[int]map[int]bool
	nextUserID    int
	nextEventID   int
	lastToken     string
}

type upstreamUser struct {
	types.User
	password string
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()

	up := &fakeUpstream{
		t:             t,
		secret:        []byte("test-secret"),
		users:         map[string]*upstreamUser{},
		events:        map[int]*types.Event{},
		registrations: map[int]map[int]bool{},
	}

	r := chi.NewRouter()
	r.Post("/signup/", up.handleSignup)
	r.Post("/login/", up.handleLogin)
	r.Get("/me/", up.handleMe)
	r.Get("/events/", up.handlePublicEvents)
	r.Get("/events/all/", up.handleAdminEvents)
	r.Get("/events/{id}/", up.handleGetEvent)
	r.Post("/events/", up.handleCreateEvent)
	r.Post("/events/{id}/register/", up.handleRegister)
	r.Post("/admin/events/{id}/{action}/", up.handleModerate)

	up.srv = httptest.NewServer(r)
	t.Cleanup(up.srv.Close)
	return up
}

func (up *fakeUpstream) seedUser(username, password string, admin bool) types.User {
	up.mu.Lock()
	defer up.mu.Unlock()

	up.nextUserID++
	user := &upstreamUser{
		User: types.User{
			ID:          up.nextUserID,
			Username:    username,
			Email:       username + "@example.com",
			PhoneNumber: "555-0100",
			IsAdmin:     admin,
		},
		password: password,
	}
	up.users[username] = user
	return user.User
}

func (up *fakeUpstream) seedEvent(name, status string) int {
	up.mu.Lock()
	defer up.mu.Unlock()

	up.nextEventID++
	up.events[up.nextEventID] = &types.Event{
		ID:       up.nextEventID,
		Name:     name,
		Category: "sports matches",
		Location: "Town Hall",
		Status:   status,
	}
	return up.nextEventID
}

func (up *fakeUpstream) issuedToken() string {
	up.mu.Lock()
	defer up.mu.Unlock()
	return up.lastToken
}

func (up *fakeUpstream) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	if _, exists := up.users[req.Username]; exists {
		writeDetail(w, http.StatusBadRequest, "Username already registered")
		return
	}

	up.nextUserID++
	user := &upstreamUser{
		User: types.User{
			ID:          up.nextUserID,
			Username:    req.Username,
			Email:       req.Email,
			PhoneNumber: req.PhoneNumber,
		},
		password: req.Password,
	}
	up.users[req.Username] = user
	writeJSON(w, http.StatusCreated, user.User)
}

func (up *fakeUpstream) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	user, ok := up.users[req.Username]
	if !ok || user.password != req.Password {
		writeDetail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := issueToken(user.ID, up.secret)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "failed to create token")
		return
	}
	up.lastToken = token
	writeJSON(w, http.StatusOK, AuthResponse{AccessToken: token, TokenType: "bearer"})
}

func (up *fakeUpstream) handleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := up.authenticate(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (up *fakeUpstream) handlePublicEvents(w http.ResponseWriter, r *http.Request) {
	// The public listing is anonymous; the client must not attach a
	// token here even when it holds one.
	if r.Header.Get("Authorization") != "" {
		writeDetail(w, http.StatusBadRequest, "unexpected Authorization header")
		return
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	events := []types.Event{}
	for id := 1; id <= up.nextEventID; id++ {
		if e, ok := up.events[id]; ok && e.Status == types.EventStatusApproved {
			events = append(events, *e)
		}
	}
	writeJSON(w, http.StatusOK, events)
}

func (up *fakeUpstream) handleAdminEvents(w http.ResponseWriter, r *http.Request) {
	user, ok := up.authenticate(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	if !user.IsAdmin {
		writeDetail(w, http.StatusForbidden, "Not enough permissions")
		return
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	events := []types.Event{}
	for id := 1; id <= up.nextEventID; id++ {
		if e, ok := up.events[id]; ok {
			events = append(events, *e)
		}
	}
	writeJSON(w, http.StatusOK, events)
}

func (up *fakeUpstream) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Event not found")
		return
	}

	viewer, authed := up.authenticate(r)

	up.mu.Lock()
	defer up.mu.Unlock()
	event, ok := up.events[id]
	if !ok {
		writeDetail(w, http.StatusNotFound, "Event not found")
		return
	}

	out := *event
	if authed {
		out.IsRegistered = up.registrations[id][viewer.ID]
	}
	writeJSON(w, http.StatusOK, out)
}

func (up *fakeUpstream) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := up.authenticate(r); !ok {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	var req CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, "name is required")
		return
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	up.nextEventID++
	event := &types.Event{
		ID:                        up.nextEventID,
		Name:                      req.Name,
		Description:               req.Description,
		ShortDescription:          req.ShortDescription,
		Category:                  req.Category,
		Location:                  req.Location,
		BannerURL:                 req.BannerURL,
		Photos:                    req.Photos,
		StartDatetime:             req.StartDatetime,
		EndDatetime:               req.EndDatetime,
		RegistrationStartDatetime: req.RegistrationStartDatetime,
		RegistrationEndDatetime:   req.RegistrationEndDatetime,
		OrganizerPhone:            req.OrganizerPhone,
		OrganizerEmail:            req.OrganizerEmail,
		Status:                    types.EventStatusPending,
	}
	up.events[event.ID] = event
	writeJSON(w, http.StatusCreated, *event)
}

func (up *fakeUpstream) handleRegister(w http.ResponseWriter, r *http.Request) {
	user, ok := up.authenticate(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Event not found")
		return
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	event, exists := up.events[id]
	if !exists {
		writeDetail(w, http.StatusNotFound, "Event not found")
		return
	}
	if up.registrations[id][user.ID] {
		writeDetail(w, http.StatusBadRequest, "Already registered for this event")
		return
	}
	if up.registrations[id] == nil {
		up.registrations[id] = map[int]bool{}
	}
	up.registrations[id][user.ID] = true

	registered := *event
	registered.IsRegistered = true
	writeJSON(w, http.StatusOK, RegistrationConfirmation{
		Message: "Successfully registered",
		Event:   &registered,
	})
}

func (up *fakeUpstream) handleModerate(w http.ResponseWriter, r *http.Request) {
	user, ok := up.authenticate(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	if !user.IsAdmin {
		writeDetail(w, http.StatusForbidden, "Not enough permissions")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Event not found")
		return
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	event, exists := up.events[id]
	if !exists {
		writeDetail(w, http.StatusNotFound, "Event not found")
		return
	}

	switch chi.URLParam(r, "action") {
	case "approve":
		event.Status = types.EventStatusApproved
	case "reject":
		event.Status = types.EventStatusRejected
	case "flag":
		event.Flag = true
	case "unflag":
		event.Flag = false
	default:
		writeDetail(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, *event)
}

// authenticate resolves the request's bearer token to a user.
func (up *fakeUpstream) authenticate(r *http.Request) (types.User, bool) {
	tokenString, err := bearerToken(r)
	if err != nil {
		return types.User{}, false
	}
	subject, err := parseTokenSubject(tokenString, up.secret)
	if err != nil {
		return types.User{}, false
	}
	id, err := strconv.Atoi(subject)
	if err != nil {
		return types.User{}, false
	}

	up.mu.Lock()
	defer up.mu.Unlock()
	for _, user := range up.users {
		if user.ID == id {
			return user.User, true
		}
	}
	return types.User{}, false
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeDetail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"detail": message})
}

func issueToken(userID int, secret []byte) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func parseTokenSubject(tokenString string, secret []byte) (string, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("missing subject")
	}
	return claims.Subject, nil
}

func bearerToken(r *http.Request) (string, error) {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if auth == "" {
		return "", errors.New("missing authorization")
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("invalid authorization")
	}
	return token, nil
}
