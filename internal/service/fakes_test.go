package service

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stride-social/backend/internal/models"
	"github.com/stride-social/backend/internal/repositories"
)

// The fakes below emulate the atomic set semantics of the Mongo repositories
// ($addToSet/$pull/$push) against in-memory maps. A shared event log lets
// tests assert ordering across collaborators (media release before record
// deletion).

type eventLog struct {
	events []string
}

func (l *eventLog) record(format string, args ...interface{}) {
	l.events = append(l.events, fmt.Sprintf(format, args...))
}

type fakePostRepo struct {
	posts map[primitive.ObjectID]*models.Post
	log   *eventLog
}

func newFakePostRepo(log *eventLog) *fakePostRepo {
	return &fakePostRepo{posts: make(map[primitive.ObjectID]*models.Post), log: log}
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrPostNotFound
	}
	snapshot := *post
	snapshot.Likes = append([]primitive.ObjectID{}, post.Likes...)
	snapshot.Comments = append([]models.Comment{}, post.Comments...)
	return &snapshot, nil
}

func (r *fakePostRepo) GetPostsByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Post, error) {
	return r.GetPostsByUserIDs(ctx, []primitive.ObjectID{userID})
}

func (r *fakePostRepo) GetPostsByUserIDs(_ context.Context, userIDs []primitive.ObjectID) ([]models.Post, error) {
	owners := make(map[primitive.ObjectID]bool, len(userIDs))
	for _, id := range userIDs {
		owners[id] = true
	}
	result := []models.Post{}
	for _, post := range r.posts {
		if owners[post.UserID] {
			result = append(result, *post)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakePostRepo) AddLike(_ context.Context, postID, userID primitive.ObjectID) error {
	post, ok := r.posts[postID]
	if !ok {
		return repositories.ErrPostNotFound
	}
	for _, id := range post.Likes {
		if id == userID {
			return nil
		}
	}
	post.Likes = append(post.Likes, userID)
	return nil
}

func (r *fakePostRepo) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) error {
	post, ok := r.posts[postID]
	if !ok {
		return repositories.ErrPostNotFound
	}
	filtered := post.Likes[:0]
	for _, id := range post.Likes {
		if id != userID {
			filtered = append(filtered, id)
		}
	}
	post.Likes = filtered
	return nil
}

func (r *fakePostRepo) AppendComment(_ context.Context, postID primitive.ObjectID, comment models.Comment) error {
	post, ok := r.posts[postID]
	if !ok {
		return repositories.ErrPostNotFound
	}
	post.Comments = append(post.Comments, comment)
	return nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.posts[id]; !ok {
		return repositories.ErrPostNotFound
	}
	delete(r.posts, id)
	if r.log != nil {
		r.log.record("post deleted %s", id.Hex())
	}
	return nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	snapshot := *user
	return &snapshot, nil
}

func (r *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			snapshot := *user
			return &snapshot, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByFirebaseUID(_ context.Context, firebaseUID string) (*models.User, error) {
	for _, user := range r.users {
		if user.FirebaseUID == firebaseUID {
			snapshot := *user
			return &snapshot, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) AddLikedPost(_ context.Context, userID, postID primitive.ObjectID) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	for _, id := range user.LikedPosts {
		if id == postID {
			return nil
		}
	}
	user.LikedPosts = append(user.LikedPosts, postID)
	return nil
}

func (r *fakeUserRepo) RemoveLikedPost(_ context.Context, userID, postID primitive.ObjectID) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	filtered := user.LikedPosts[:0]
	for _, id := range user.LikedPosts {
		if id != postID {
			filtered = append(filtered, id)
		}
	}
	user.LikedPosts = filtered
	return nil
}

type fakeNotificationRepo struct {
	created []models.Notification
	failing bool
}

func (r *fakeNotificationRepo) CreateNotification(notification *models.Notification) error {
	if r.failing {
		return fmt.Errorf("connection refused")
	}
	r.created = append(r.created, *notification)
	return nil
}

func (r *fakeNotificationRepo) GetByRecipient(recipient string) ([]models.Notification, error) {
	result := []models.Notification{}
	for _, n := range r.created {
		if n.To == recipient {
			result = append(result, n)
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) GetUnreadCount(recipient string) (int64, error) {
	var count int64
	for _, n := range r.created {
		if n.To == recipient && !n.Read {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(notificationID uint) error { return nil }

func (r *fakeNotificationRepo) MarkAllAsRead(recipient string) error { return nil }

type fakeMediaStorage struct {
	uploads   int
	deletes   []string
	uploadErr error
	deleteErr error
	log       *eventLog
}

func (s *fakeMediaStorage) Upload(_ context.Context, data []byte, contentType string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.uploads++
	return fmt.Sprintf("https://cdn.example.com/posts/asset%d.jpg", s.uploads), nil
}

func (s *fakeMediaStorage) Delete(_ context.Context, assetID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletes = append(s.deletes, assetID)
	if s.log != nil {
		s.log.record("asset deleted %s", assetID)
	}
	return nil
}
