package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *AuthHandler
	Account    *AccountHandler
	Project    *ProjectHandler
	Membership *MembershipHandler
	Submission *SubmissionHandler
	Feedback   *FeedbackHandler
	Upload     *UploadHandler
}

// NewRouter wires all routes. Login, feedback submission and image
// download are the only anonymous endpoints.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(auth.Authenticate)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/feedback", h.Feedback.Submit).Methods(http.MethodPost)
	api.HandleFunc("/feedback", RequireAuth(h.Feedback.List)).Methods(http.MethodGet)

	api.HandleFunc("/accounts", RequireAuth(h.Account.Create)).Methods(http.MethodPost)
	api.HandleFunc("/accounts", RequireAuth(h.Account.List)).Methods(http.MethodGet)
	api.HandleFunc("/accounts/{accountID}/role", RequireAuth(h.Account.ChangeRole)).Methods(http.MethodPut)
	api.HandleFunc("/accounts/{accountID}", RequireAuth(h.Account.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/projects", RequireAuth(h.Project.Create)).Methods(http.MethodPost)
	api.HandleFunc("/projects", RequireAuth(h.Project.Search)).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectID}", RequireAuth(h.Project.Get)).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectID}", RequireAuth(h.Project.Edit)).Methods(http.MethodPut)
	api.HandleFunc("/projects/{projectID}", RequireAuth(h.Project.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/projects/{projectID}/head", RequireAuth(h.Project.ReassignHead)).Methods(http.MethodPut)

	api.HandleFunc("/projects/{projectID}/join", RequireAuth(h.Membership.RequestJoin)).Methods(http.MethodPost)
	api.HandleFunc("/projects/{projectID}/members", RequireAuth(h.Membership.SyncMembers)).Methods(http.MethodPut)
	api.HandleFunc("/projects/{projectID}/requests", RequireAuth(h.Membership.ListPending)).Methods(http.MethodGet)
	api.HandleFunc("/memberships/{membershipID}/review", RequireAuth(h.Membership.Review)).Methods(http.MethodPost)

	api.HandleFunc("/projects/{projectID}/submissions", RequireAuth(h.Submission.Create)).Methods(http.MethodPost)
	api.HandleFunc("/submissions/{submissionID}", RequireAuth(h.Submission.Edit)).Methods(http.MethodPut)
	api.HandleFunc("/submissions/{submissionID}", RequireAuth(h.Submission.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/submissions/{submissionID}/like", RequireAuth(h.Submission.ToggleLike)).Methods(http.MethodPost)

	api.HandleFunc("/uploads", RequireAuth(h.Upload.Upload)).Methods(http.MethodPost)
	api.HandleFunc("/uploads", h.Upload.Download).Methods(http.MethodGet)

	return r
}
