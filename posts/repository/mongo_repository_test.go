package repository

import (
	"context"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveline-social/waveline/internal/database/interfaces"
	"github.com/waveline-social/waveline/posts/models"
)

// fakeDB is a func-field fake of interfaces.Repository
type fakeDB struct {
	saveFn    func(ctx context.Context, collection string, data interface{}) interfaces.RepositoryResult
	findFn    func(ctx context.Context, collection string, filter interface{}, opts *interfaces.FindOptions) interfaces.QueryResult
	findOneFn func(ctx context.Context, collection string, filter interface{}) interfaces.SingleResult
	updateFn  func(ctx context.Context, collection string, filter, data interface{}, opts *interfaces.UpdateOptions) interfaces.RepositoryResult
	deleteFn  func(ctx context.Context, collection string, filter interface{}) interfaces.RepositoryResult
}

func (f *fakeDB) Save(ctx context.Context, collection string, data interface{}) <-chan interfaces.RepositoryResult {
	ch := make(chan interfaces.RepositoryResult, 1)
	ch <- f.saveFn(ctx, collection, data)
	close(ch)
	return ch
}

func (f *fakeDB) Find(ctx context.Context, collection string, filter interface{}, opts *interfaces.FindOptions) <-chan interfaces.QueryResult {
	ch := make(chan interfaces.QueryResult, 1)
	ch <- f.findFn(ctx, collection, filter, opts)
	close(ch)
	return ch
}

func (f *fakeDB) FindOne(ctx context.Context, collection string, filter interface{}) <-chan interfaces.SingleResult {
	ch := make(chan interfaces.SingleResult, 1)
	ch <- f.findOneFn(ctx, collection, filter)
	close(ch)
	return ch
}

func (f *fakeDB) Update(ctx context.Context, collection string, filter, data interface{}, opts *interfaces.UpdateOptions) <-chan interfaces.RepositoryResult {
	ch := make(chan interfaces.RepositoryResult, 1)
	ch <- f.updateFn(ctx, collection, filter, data, opts)
	close(ch)
	return ch
}

func (f *fakeDB) Delete(ctx context.Context, collection string, filter interface{}) <-chan interfaces.RepositoryResult {
	ch := make(chan interfaces.RepositoryResult, 1)
	ch <- f.deleteFn(ctx, collection, filter)
	close(ch)
	return ch
}

func (f *fakeDB) CreateIndex(ctx context.Context, collection string, indexes map[string]interface{}) <-chan error {
	ch := make(chan error, 1)
	ch <- nil
	close(ch)
	return ch
}

func (f *fakeDB) Ping(ctx context.Context) <-chan error {
	ch := make(chan error, 1)
	ch <- nil
	close(ch)
	return ch
}

func (f *fakeDB) Close() error { return nil }

// fakeCursor replays a fixed list of posts
type fakeCursor struct {
	posts []models.Post
	pos   int
	err   error
}

func (c *fakeCursor) Next() bool {
	if c.pos >= len(c.posts) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeCursor) Decode(v interface{}) error {
	*(v.(*models.Post)) = c.posts[c.pos-1]
	return nil
}

func (c *fakeCursor) Close()       {}
func (c *fakeCursor) Error() error { return c.err }

// fakeSingle holds one post or a not-found state
type fakeSingle struct {
	post     *models.Post
	noResult bool
}

func (s *fakeSingle) Decode(v interface{}) error {
	if s.noResult {
		return interfaces.ErrNoDocuments
	}
	*(v.(*models.Post)) = *s.post
	return nil
}

func (s *fakeSingle) Error() error {
	if s.noResult {
		return interfaces.ErrNoDocuments
	}
	return nil
}

func (s *fakeSingle) NoResult() bool { return s.noResult }

func newTestUUID(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewV4()
	require.NoError(t, err)
	return id
}

func TestFindByOwner_SortsNewestFirst(t *testing.T) {
	ownerID := newTestUUID(t)

	var gotFilter interface{}
	var gotOpts *interfaces.FindOptions
	db := &fakeDB{
		findFn: func(ctx context.Context, collection string, filter interface{}, opts *interfaces.FindOptions) interfaces.QueryResult {
			gotFilter = filter
			gotOpts = opts
			return &fakeCursor{posts: []models.Post{{Text: "newer"}, {Text: "older"}}}
		},
	}

	repo := NewMongoPostRepository(db)
	posts, err := repo.FindByOwner(context.Background(), ownerID)

	require.NoError(t, err)
	require.NotNil(t, gotOpts)
	assert.Equal(t, map[string]int{"created_date": -1, "objectId": -1}, gotOpts.Sort)
	assert.Equal(t, map[string]interface{}{"postedBy": ownerID}, gotFilter)
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Text)
	assert.Equal(t, "older", posts[1].Text)
}

func TestFindByOwners_FiltersWithInAndSorts(t *testing.T) {
	ownerA := newTestUUID(t)
	ownerB := newTestUUID(t)

	var gotFilter interface{}
	var gotOpts *interfaces.FindOptions
	db := &fakeDB{
		findFn: func(ctx context.Context, collection string, filter interface{}, opts *interfaces.FindOptions) interfaces.QueryResult {
			gotFilter = filter
			gotOpts = opts
			return &fakeCursor{}
		},
	}

	repo := NewMongoPostRepository(db)
	posts, err := repo.FindByOwners(context.Background(), []uuid.UUID{ownerA, ownerB})

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"created_date": -1, "objectId": -1}, gotOpts.Sort)
	assert.Equal(t, map[string]interface{}{
		"postedBy": map[string]interface{}{"$in": []uuid.UUID{ownerA, ownerB}},
	}, gotFilter)
	assert.Empty(t, posts)
}

func TestFindByOwners_EmptySkipsStore(t *testing.T) {
	called := false
	db := &fakeDB{
		findFn: func(ctx context.Context, collection string, filter interface{}, opts *interfaces.FindOptions) interfaces.QueryResult {
			called = true
			return &fakeCursor{}
		},
	}

	repo := NewMongoPostRepository(db)
	posts, err := repo.FindByOwners(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.False(t, called)
}

func TestFindByID_NotFound(t *testing.T) {
	db := &fakeDB{
		findOneFn: func(ctx context.Context, collection string, filter interface{}) interfaces.SingleResult {
			return &fakeSingle{noResult: true}
		},
	}

	repo := NewMongoPostRepository(db)
	_, err := repo.FindByID(context.Background(), newTestUUID(t))

	assert.ErrorIs(t, err, interfaces.ErrNoDocuments)
}

func TestAddLike_UsesAddToSet(t *testing.T) {
	postID := newTestUUID(t)
	userID := newTestUUID(t)

	var gotUpdate interface{}
	db := &fakeDB{
		updateFn: func(ctx context.Context, collection string, filter, data interface{}, opts *interfaces.UpdateOptions) interfaces.RepositoryResult {
			gotUpdate = data
			return interfaces.RepositoryResult{Result: int64(1)}
		},
	}

	repo := NewMongoPostRepository(db)
	err := repo.AddLike(context.Background(), postID, userID)

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"$addToSet": map[string]interface{}{"likes": userID},
	}, gotUpdate)
}

func TestRemoveLike_UsesPull(t *testing.T) {
	postID := newTestUUID(t)
	userID := newTestUUID(t)

	var gotUpdate interface{}
	db := &fakeDB{
		updateFn: func(ctx context.Context, collection string, filter, data interface{}, opts *interfaces.UpdateOptions) interfaces.RepositoryResult {
			gotUpdate = data
			return interfaces.RepositoryResult{Result: int64(1)}
		},
	}

	repo := NewMongoPostRepository(db)
	err := repo.RemoveLike(context.Background(), postID, userID)

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"$pull": map[string]interface{}{"likes": userID},
	}, gotUpdate)
}

func TestAppendReply_UsesPush(t *testing.T) {
	postID := newTestUUID(t)
	reply := &models.Reply{Text: "nice one"}

	var gotUpdate interface{}
	db := &fakeDB{
		updateFn: func(ctx context.Context, collection string, filter, data interface{}, opts *interfaces.UpdateOptions) interfaces.RepositoryResult {
			gotUpdate = data
			return interfaces.RepositoryResult{Result: int64(1)}
		},
	}

	repo := NewMongoPostRepository(db)
	err := repo.AppendReply(context.Background(), postID, reply)

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"$push": map[string]interface{}{"replies": reply},
	}, gotUpdate)
}

func TestUpdates_ZeroMatchedMapsToNotFound(t *testing.T) {
	db := &fakeDB{
		updateFn: func(ctx context.Context, collection string, filter, data interface{}, opts *interfaces.UpdateOptions) interfaces.RepositoryResult {
			return interfaces.RepositoryResult{Result: int64(0)}
		},
	}

	repo := NewMongoPostRepository(db)
	postID := newTestUUID(t)
	userID := newTestUUID(t)

	assert.ErrorIs(t, repo.AddLike(context.Background(), postID, userID), interfaces.ErrNoDocuments)
	assert.ErrorIs(t, repo.RemoveLike(context.Background(), postID, userID), interfaces.ErrNoDocuments)
	assert.ErrorIs(t, repo.AppendReply(context.Background(), postID, &models.Reply{Text: "x"}), interfaces.ErrNoDocuments)
}

func TestDelete_ZeroDeletedMapsToNotFound(t *testing.T) {
	db := &fakeDB{
		deleteFn: func(ctx context.Context, collection string, filter interface{}) interfaces.RepositoryResult {
			return interfaces.RepositoryResult{Result: int64(0)}
		},
	}

	repo := NewMongoPostRepository(db)

	assert.ErrorIs(t, repo.Delete(context.Background(), newTestUUID(t)), interfaces.ErrNoDocuments)
}

func TestCreate_SavesToPostsCollection(t *testing.T) {
	var gotCollection string
	var gotData interface{}
	db := &fakeDB{
		saveFn: func(ctx context.Context, collection string, data interface{}) interfaces.RepositoryResult {
			gotCollection = collection
			gotData = data
			return interfaces.RepositoryResult{Result: "id"}
		},
	}

	repo := NewMongoPostRepository(db)
	post := &models.Post{ObjectId: newTestUUID(t), Text: "hello"}
	err := repo.Create(context.Background(), post)

	require.NoError(t, err)
	assert.Equal(t, "posts", gotCollection)
	assert.Same(t, post, gotData)
}
