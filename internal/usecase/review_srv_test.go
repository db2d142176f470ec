package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Alexandra1624/infra-sp2/internal/access"
	"github.com/Alexandra1624/infra-sp2/internal/data/entity"
	"github.com/Alexandra1624/infra-sp2/internal/data/repository"
	"github.com/Alexandra1624/infra-sp2/internal/dto/request"
	"github.com/Alexandra1624/infra-sp2/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func principal(users *stubUserRepo, username string, role entity.UserRole) access.Principal {
	u := seedUser(users, username, role)
	return access.Principal{
		ID:            u.ID,
		Username:      username,
		Role:          role,
		Authenticated: true,
	}
}

func seedTitle(titles *stubTitleRepo, name string) *entity.Title {
	now := time.Now()
	title := &entity.Title{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: name,
		Year: 2001,
	}
	titles.titles[title.ID] = title
	return title
}

func newReviewFixture(t *testing.T) (ReviewService, *repository.Repository, *stubUserRepo, *stubTitleRepo, *stubReviewRepo) {
	t.Helper()
	repo, users, titles, reviews, _ := newStubRepository()
	svc := NewReviewService(repo, zap.NewNop())
	return svc, repo, users, titles, reviews
}

func TestReviewCreate(t *testing.T) {
	svc, _, users, titles, _ := newReviewFixture(t)
	ctx := context.Background()
	title := seedTitle(titles, "Dune")
	alice := principal(users, "alice", entity.RoleUser)

	resp, err := svc.Create(ctx, alice, title.ID.String(), &request.CreateReviewRequest{
		Text:  "a slow burn",
		Score: 8,
	})
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Author)
	require.Equal(t, 8, resp.Score)
	require.Equal(t, title.ID.String(), resp.TitleID)
}

func TestReviewCreate_RequiresAuthentication(t *testing.T) {
	svc, _, _, titles, _ := newReviewFixture(t)
	title := seedTitle(titles, "Dune")

	_, err := svc.Create(context.Background(), access.Anonymous(), title.ID.String(), &request.CreateReviewRequest{
		Text:  "ok",
		Score: 5,
	})
	require.Error(t, err)
	require.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
}

func TestReviewCreate_ScoreBounds(t *testing.T) {
	svc, _, users, titles, _ := newReviewFixture(t)
	ctx := context.Background()
	title := seedTitle(titles, "Dune")
	alice := principal(users, "alice", entity.RoleUser)

	for _, score := range []int{0, 11, -3} {
		_, err := svc.Create(ctx, alice, title.ID.String(), &request.CreateReviewRequest{
			Text:  "out of range",
			Score: score,
		})
		require.Error(t, err, "score %d", score)
		require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}

	for _, score := range []int{1, 10} {
		other := seedTitle(titles, "Other")
		_, err := svc.Create(ctx, alice, other.ID.String(), &request.CreateReviewRequest{
			Text:  "boundary",
			Score: score,
		})
		require.NoError(t, err, "score %d", score)
	}
}

func TestReviewCreate_OnePerTitlePerAuthor(t *testing.T) {
	svc, _, users, titles, _ := newReviewFixture(t)
	ctx := context.Background()
	title := seedTitle(titles, "Dune")
	other := seedTitle(titles, "Solaris")
	alice := principal(users, "alice", entity.RoleUser)
	bob := principal(users, "bob", entity.RoleUser)

	_, err := svc.Create(ctx, alice, title.ID.String(), &request.CreateReviewRequest{Text: "first", Score: 7})
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, title.ID.String(), &request.CreateReviewRequest{Text: "second", Score: 9})
	require.Error(t, err)
	require.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// A different author on the same title and the same author on a
	// different title are both fine.
	_, err = svc.Create(ctx, bob, title.ID.String(), &request.CreateReviewRequest{Text: "fine", Score: 6})
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, other.ID.String(), &request.CreateReviewRequest{Text: "fine", Score: 6})
	require.NoError(t, err)
}

func TestReviewCreate_TitleLookups(t *testing.T) {
	svc, _, users, _, _ := newReviewFixture(t)
	ctx := context.Background()
	alice := principal(users, "alice", entity.RoleUser)
	req := &request.CreateReviewRequest{Text: "ok", Score: 5}

	_, err := svc.Create(ctx, alice, uuid.NewString(), req)
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = svc.Create(ctx, alice, "not-a-uuid", req)
	require.Error(t, err)
	require.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestReviewUpdate_Ownership(t *testing.T) {
	svc, _, users, titles, _ := newReviewFixture(t)
	ctx := context.Background()
	title := seedTitle(titles, "Dune")
	alice := principal(users, "alice", entity.RoleUser)
	bob := principal(users, "bob", entity.RoleUser)
	mod := principal(users, "mod", entity.RoleModerator)
	admin := principal(users, "admin", entity.RoleAdmin)

	created, err := svc.Create(ctx, alice, title.ID.String(), &request.CreateReviewRequest{Text: "mine", Score: 5})
	require.NoError(t, err)

	newText := "edited"
	upd := &request.UpdateReviewRequest{Text: &newText}

	// Another plain user is rejected with a forbidden error.
	_, err = svc.Update(ctx, bob, title.ID.String(), created.ID, upd)
	require.Error(t, err)
	require.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))

	// Anonymous is an authentication failure, not authorization.
	_, err = svc.Update(ctx, access.Anonymous(), title.ID.String(), created.ID, upd)
	require.Error(t, err)
	require.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))

	// Owner, moderator and admin may all edit.
	for _, p := range []access.Principal{alice, mod, admin} {
		resp, err := svc.Update(ctx, p, title.ID.String(), created.ID, upd)
		require.NoError(t, err, "role %s", p.Role)
		require.Equal(t, "edited", resp.Text)
	}
}

func TestReviewUpdate_ScoreOnly(t *testing.T) {
	svc, _, users, titles, _ := newReviewFixture(t)
	ctx := context.Background()
	title := seedTitle(titles, "Dune")
	alice := principal(users, "alice", entity.RoleUser)

	created, err := svc.Create(ctx, alice, title.ID.String(), &request.CreateReviewRequest{Text: "mine", Score: 5})
	require.NoError(t, err)

	score := 9
	resp, err := svc.Update(ctx, alice, title.ID.String(), created.ID, &request.UpdateReviewRequest{Score: &score})
	require.NoError(t, err)
	require.Equal(t, 9, resp.Score)
	require.Equal(t, "mine", resp.Text)
}

func TestReviewDelete_Ownership(t *testing.T) {
	svc, _, users, titles, reviews := newReviewFixture(t)
	ctx := context.Background()
	title := seedTitle(titles, "Dune")
	alice := principal(users, "alice", entity.RoleUser)
	bob := principal(users, "bob", entity.RoleUser)

	created, err := svc.Create(ctx, alice, title.ID.String(), &request.CreateReviewRequest{Text: "mine", Score: 5})
	require.NoError(t, err)

	err = svc.Delete(ctx, bob, title.ID.String(), created.ID)
	require.Error(t, err)
	require.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))

	require.NoError(t, svc.Delete(ctx, alice, title.ID.String(), created.ID))
	require.Empty(t, reviews.reviews)
}

func TestReviewGet_WrongTitleIsNotFound(t *testing.T) {
	svc, _, users, titles, _ := newReviewFixture(t)
	ctx := context.Background()
	title := seedTitle(titles, "Dune")
	other := seedTitle(titles, "Solaris")
	alice := principal(users, "alice", entity.RoleUser)

	created, err := svc.Create(ctx, alice, title.ID.String(), &request.CreateReviewRequest{Text: "mine", Score: 5})
	require.NoError(t, err)

	// The review exists but is nested under a different title.
	_, err = svc.Get(ctx, other.ID.String(), created.ID)
	require.Error(t, err)
	require.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	got, err := svc.Get(ctx, title.ID.String(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
}

func TestReviewGetByTitle_Paginates(t *testing.T) {
	svc, _, users, titles, _ := newReviewFixture(t)
	ctx := context.Background()
	title := seedTitle(titles, "Dune")

	for i, name := range []string{"a", "b", "c"} {
		p := principal(users, name, entity.RoleUser)
		_, err := svc.Create(ctx, p, title.ID.String(), &request.CreateReviewRequest{Text: "r", Score: i + 1})
		require.NoError(t, err)
	}

	page, err := svc.GetByTitle(ctx, title.ID.String(), &request.PaginatedRequest{Page: 1, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	require.Equal(t, int64(3), page.Pagination.Total)
}
