package domain

type Submission struct {
	ID          int32   `json:"id"`
	ProjectID   int32   `json:"project_id"`
	AccountID   int32   `json:"account_id"`
	Description string  `json:"description"`
	ImageRef    *string `json:"image_ref,omitempty"`
	CreatedOn   string  `json:"created_on"`
}

// LikeResult is the post-mutation outcome of a like toggle. Count is
// always recomputed from storage after the flip, never cached.
type LikeResult struct {
	Liked bool  `json:"liked"`
	Count int32 `json:"count"`
}
