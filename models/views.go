package models

import "time"

// Response projections. The entity graph is cyclic (user -> review -> perfume
// -> review -> comment -> user), so every endpoint serializes one of these
// hand-written views instead of a raw model, and each view spells out exactly
// which relationship fields it carries.

type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func SummarizeUser(u *User) UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}

func SummarizeUsers(users []*User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, SummarizeUser(u))
	}
	return out
}

// PerfumeSummary is the perfume as embedded in a review: description,
// ingredients and reviews suppressed.
type PerfumeSummary struct {
	ID        uint   `json:"id"`
	Brand     string `json:"brand"`
	Name      string `json:"name_perfume"`
	Family    string `json:"family"`
	Subfamily string `json:"subfamily"`
	Gender    string `json:"gender"`
	ImageName string `json:"image_name"`
}

func SummarizePerfume(p *Perfume) PerfumeSummary {
	return PerfumeSummary{
		ID:        p.ID,
		Brand:     p.Brand,
		Name:      p.Name,
		Family:    p.Family,
		Subfamily: p.Subfamily,
		Gender:    p.Gender,
		ImageName: p.ImageName,
	}
}

type CommentView struct {
	ID        uint        `json:"id"`
	Text      string      `json:"text"`
	CreatedAt time.Time   `json:"createdAt"`
	Author    UserSummary `json:"author"`
}

func NewCommentView(c *Comment) CommentView {
	return CommentView{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		Author:    SummarizeUser(&c.Author),
	}
}

type ReviewView struct {
	ID         uint           `json:"id"`
	Rating     int            `json:"rating"`
	Text       string         `json:"text"`
	CreatedAt  time.Time      `json:"createdAt"`
	Author     UserSummary    `json:"author"`
	Subject    PerfumeSummary `json:"subject"`
	LikesCount int            `json:"likesCount"`
	Comments   []CommentView  `json:"comments"`
}

func NewReviewView(r *Review) ReviewView {
	comments := make([]CommentView, 0, len(r.Comments))
	for i := range r.Comments {
		comments = append(comments, NewCommentView(&r.Comments[i]))
	}
	return ReviewView{
		ID:         r.ID,
		Rating:     r.Rating,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
		Author:     SummarizeUser(&r.Author),
		Subject:    SummarizePerfume(&r.Subject),
		LikesCount: r.LikesCount(),
		Comments:   comments,
	}
}

func NewReviewViews(reviews []Review) []ReviewView {
	out := make([]ReviewView, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewView(&reviews[i]))
	}
	return out
}

// PerfumeReview is a review as embedded in its own perfume: the subject
// back-reference is dropped.
type PerfumeReview struct {
	ID         uint          `json:"id"`
	Rating     int           `json:"rating"`
	Text       string        `json:"text"`
	CreatedAt  time.Time     `json:"createdAt"`
	Author     UserSummary   `json:"author"`
	LikesCount int           `json:"likesCount"`
	Comments   []CommentView `json:"comments"`
}

// PerfumeView is the full catalog entry, reviews included.
type PerfumeView struct {
	ID          uint            `json:"id"`
	Brand       string          `json:"brand"`
	Name        string          `json:"name_perfume"`
	Family      string          `json:"family"`
	Subfamily   string          `json:"subfamily"`
	Gender      string          `json:"gender"`
	Description string          `json:"description"`
	Ingredients []string        `json:"ingredients"`
	ImageName   string          `json:"image_name"`
	Reviews     []PerfumeReview `json:"reviews"`
}

func NewPerfumeView(p *Perfume) PerfumeView {
	reviews := make([]PerfumeReview, 0, len(p.Reviews))
	for i := range p.Reviews {
		r := &p.Reviews[i]
		comments := make([]CommentView, 0, len(r.Comments))
		for j := range r.Comments {
			comments = append(comments, NewCommentView(&r.Comments[j]))
		}
		reviews = append(reviews, PerfumeReview{
			ID:         r.ID,
			Rating:     r.Rating,
			Text:       r.Text,
			CreatedAt:  r.CreatedAt,
			Author:     SummarizeUser(&r.Author),
			LikesCount: r.LikesCount(),
			Comments:   comments,
		})
	}
	return PerfumeView{
		ID:          p.ID,
		Brand:       p.Brand,
		Name:        p.Name,
		Family:      p.Family,
		Subfamily:   p.Subfamily,
		Gender:      p.Gender,
		Description: p.Description,
		Ingredients: p.IngredientNames(),
		ImageName:   p.ImageName,
		Reviews:     reviews,
	}
}

func NewPerfumeViews(perfumes []Perfume) []PerfumeView {
	out := make([]PerfumeView, 0, len(perfumes))
	for i := range perfumes {
		out = append(out, NewPerfumeView(&perfumes[i]))
	}
	return out
}
