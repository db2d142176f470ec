package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/pkg/apperr"

	"github.com/google/uuid"
)

// In-memory repository stubs. They mirror the constraint behavior of the
// real Postgres layer: duplicate keys come back as conflict errors, missing
// rows come back as (nil, nil).

type stubUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.ConfirmationCode != nil {
		code := *u.ConfirmationCode
		clone.ConfirmationCode = &code
	}
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return apperr.Conflict("user already exists")
		}
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return cloneUser(r.users[id]), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	all := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, cloneUser(u))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *stubUserRepo) CountAll(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	existing, ok := r.users[user.ID]
	if !ok {
		return errors.New("no such user")
	}
	for _, u := range r.users {
		if u.ID != user.ID && (u.Username == user.Username || strings.EqualFold(u.Email, user.Email)) {
			return apperr.Conflict("user already exists")
		}
	}
	clone := cloneUser(user)
	clone.ConfirmationCode = existing.ConfirmationCode
	r.users[user.ID] = clone
	return nil
}

func (r *stubUserRepo) SetConfirmationCode(_ context.Context, id uuid.UUID, code *string) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.users[id]
	if !ok {
		return errors.New("no such user")
	}
	if code == nil {
		u.ConfirmationCode = nil
		return nil
	}
	c := *code
	u.ConfirmationCode = &c
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	delete(r.users, id)
	return nil
}

type stubTitleRepo struct {
	titles    map[uuid.UUID]*entity.Title
	genres    map[uuid.UUID][]uuid.UUID
	genreRepo *stubGenreRepo
}

func newStubTitleRepo() *stubTitleRepo {
	return &stubTitleRepo{
		titles: make(map[uuid.UUID]*entity.Title),
		genres: make(map[uuid.UUID][]uuid.UUID),
	}
}

// syncGenres mirrors the join rows into the genre stub so FindByTitleID
// behaves like the SQL join.
func (r *stubTitleRepo) syncGenres(titleID uuid.UUID, genreIDs []uuid.UUID) {
	r.genres[titleID] = genreIDs
	if r.genreRepo == nil {
		return
	}
	linked := make([]*entity.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		for _, g := range r.genreRepo.genres {
			if g.ID == id {
				clone := *g
				linked = append(linked, &clone)
			}
		}
	}
	r.genreRepo.byTitle[titleID] = linked
}

func (r *stubTitleRepo) Create(_ context.Context, title *entity.Title, genreIDs []uuid.UUID) error {
	clone := *title
	r.titles[title.ID] = &clone
	r.syncGenres(title.ID, genreIDs)
	return nil
}

func (r *stubTitleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Title, error) {
	t, ok := r.titles[id]
	if !ok {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (r *stubTitleRepo) FindAll(_ context.Context, _ repository.TitleFilter, limit, offset int) ([]*entity.Title, error) {
	all := make([]*entity.Title, 0, len(r.titles))
	for _, t := range r.titles {
		clone := *t
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *stubTitleRepo) CountAll(_ context.Context, _ repository.TitleFilter) (int64, error) {
	return int64(len(r.titles)), nil
}

func (r *stubTitleRepo) Update(_ context.Context, title *entity.Title, genreIDs []uuid.UUID) error {
	clone := *title
	r.titles[title.ID] = &clone
	if genreIDs != nil {
		r.syncGenres(title.ID, genreIDs)
	}
	return nil
}

func (r *stubTitleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.titles, id)
	delete(r.genres, id)
	return nil
}

type stubReviewRepo struct {
	reviews map[uuid.UUID]*entity.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (r *stubReviewRepo) Create(_ context.Context, review *entity.Review) error {
	for _, existing := range r.reviews {
		if existing.TitleID == review.TitleID && existing.AuthorID == review.AuthorID {
			return apperr.Conflict("review for this title already exists")
		}
	}
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, nil
	}
	clone := *rev
	return &clone, nil
}

func (r *stubReviewRepo) FindByTitleID(_ context.Context, titleID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	all := make([]*entity.Review, 0)
	for _, rev := range r.reviews {
		if rev.TitleID == titleID {
			clone := *rev
			all = append(all, &clone)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *stubReviewRepo) FindByTitleAndAuthor(_ context.Context, titleID, authorID uuid.UUID) (*entity.Review, error) {
	for _, rev := range r.reviews {
		if rev.TitleID == titleID && rev.AuthorID == authorID {
			clone := *rev
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubReviewRepo) CountByTitleID(_ context.Context, titleID uuid.UUID) (int64, error) {
	var n int64
	for _, rev := range r.reviews {
		if rev.TitleID == titleID {
			n++
		}
	}
	return n, nil
}

func (r *stubReviewRepo) Update(_ context.Context, review *entity.Review) error {
	clone := *review
	r.reviews[review.ID] = &clone
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.reviews, id)
	return nil
}

type stubCommentRepo struct {
	comments map[uuid.UUID]*entity.Comment
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[uuid.UUID]*entity.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) FindByReviewID(_ context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	all := make([]*entity.Comment, 0)
	for _, c := range r.comments {
		if c.ReviewID == reviewID {
			clone := *c
			all = append(all, &clone)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *stubCommentRepo) CountByReviewID(_ context.Context, reviewID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.comments {
		if c.ReviewID == reviewID {
			n++
		}
	}
	return n, nil
}

func (r *stubCommentRepo) Update(_ context.Context, comment *entity.Comment) error {
	clone := *comment
	r.comments[comment.ID] = &clone
	return nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.comments, id)
	return nil
}

type stubCategoryRepo struct {
	categories map[string]*entity.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if _, exists := r.categories[category.Slug]; exists {
		return apperr.Conflict("category slug already exists")
	}
	clone := *category
	r.categories[category.Slug] = &clone
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	c, ok := r.categories[slug]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.Category, error) {
	all := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		clone := *c
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *stubCategoryRepo) CountAll(_ context.Context, search string) (int64, error) {
	var n int64
	for _, c := range r.categories {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		n++
	}
	return n, nil
}

func (r *stubCategoryRepo) DeleteBySlug(_ context.Context, slug string) error {
	if _, ok := r.categories[slug]; !ok {
		return apperr.NotFound("category %s not found", slug)
	}
	delete(r.categories, slug)
	return nil
}

type stubGenreRepo struct {
	genres  map[string]*entity.Genre
	byTitle map[uuid.UUID][]*entity.Genre
}

func newStubGenreRepo() *stubGenreRepo {
	return &stubGenreRepo{
		genres:  make(map[string]*entity.Genre),
		byTitle: make(map[uuid.UUID][]*entity.Genre),
	}
}

func (r *stubGenreRepo) Create(_ context.Context, genre *entity.Genre) error {
	if _, exists := r.genres[genre.Slug]; exists {
		return apperr.Conflict("genre slug already exists")
	}
	clone := *genre
	r.genres[genre.Slug] = &clone
	return nil
}

func (r *stubGenreRepo) FindBySlug(_ context.Context, slug string) (*entity.Genre, error) {
	g, ok := r.genres[slug]
	if !ok {
		return nil, nil
	}
	clone := *g
	return &clone, nil
}

func (r *stubGenreRepo) FindBySlugs(_ context.Context, slugs []string) ([]*entity.Genre, error) {
	found := make([]*entity.Genre, 0, len(slugs))
	for _, slug := range slugs {
		if g, ok := r.genres[slug]; ok {
			clone := *g
			found = append(found, &clone)
		}
	}
	return found, nil
}

func (r *stubGenreRepo) FindByTitleID(_ context.Context, titleID uuid.UUID) ([]*entity.Genre, error) {
	return r.byTitle[titleID], nil
}

func (r *stubGenreRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.Genre, error) {
	all := make([]*entity.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		if search != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(search)) {
			continue
		}
		clone := *g
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *stubGenreRepo) CountAll(_ context.Context, search string) (int64, error) {
	var n int64
	for _, g := range r.genres {
		if search != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(search)) {
			continue
		}
		n++
	}
	return n, nil
}

func (r *stubGenreRepo) DeleteBySlug(_ context.Context, slug string) error {
	if _, ok := r.genres[slug]; !ok {
		return apperr.NotFound("genre %s not found", slug)
	}
	delete(r.genres, slug)
	return nil
}

// stubMailer records deliveries and can be told to fail.
type stubMailer struct {
	sent []string
	body []string
	fail bool
}

func (m *stubMailer) Send(_ context.Context, to, _ string, body string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}
	m.sent = append(m.sent, to)
	m.body = append(m.body, body)
	return nil
}

func newStubRepository() (*repository.Repository, *stubUserRepo, *stubTitleRepo, *stubReviewRepo, *stubCommentRepo) {
	users := newStubUserRepo()
	titles := newStubTitleRepo()
	reviews := newStubReviewRepo()
	comments := newStubCommentRepo()
	genres := newStubGenreRepo()
	titles.genreRepo = genres
	repo := &repository.Repository{
		User:     users,
		Category: newStubCategoryRepo(),
		Genre:    genres,
		Title:    titles,
		Review:   reviews,
		Comment:  comments,
	}
	return repo, users, titles, reviews, comments
}
