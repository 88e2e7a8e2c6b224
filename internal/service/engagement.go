package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stride-social/backend/internal/media"
	"github.com/stride-social/backend/internal/metrics"
	"github.com/stride-social/backend/internal/models"
	"github.com/stride-social/backend/internal/repositories"
)

// EngagementService implements the like-toggle state machine, comment append
// and post create/delete, orchestrating the post store, the user directory,
// the media storage and the notifier.
type EngagementService struct {
	posts    repositories.PostRepository
	users    repositories.UserRepository
	notifier *Notifier
	storage  media.Storage
	metrics  metrics.Recorder
	log      logrus.FieldLogger
}

// NewEngagementService creates a new EngagementService
func NewEngagementService(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notifier *Notifier,
	storage media.Storage,
	rec metrics.Recorder,
	log logrus.FieldLogger,
) *EngagementService {
	return &EngagementService{
		posts:    postRepo,
		users:    userRepo,
		notifier: notifier,
		storage:  storage,
		metrics:  rec,
		log:      log,
	}
}

// CreatePost validates the request, uploads the image payload if present and
// persists the post. The post is never stored with a raw image payload; only
// the durable URL returned by the media storage is persisted.
func (s *EngagementService) CreatePost(ctx context.Context, callerID primitive.ObjectID, req models.CreatePostRequest) (*models.Post, error) {
	if _, err := s.users.GetUserByID(ctx, callerID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, notFound("user not found")
		}
		return nil, err
	}

	text := strings.TrimSpace(req.Text)
	if text == "" && req.Img == "" {
		return nil, invalidArgument("please provide text or image")
	}

	var imageURL string
	if req.Img != "" {
		data, contentType, err := media.DecodePayload(req.Img)
		if err != nil {
			return nil, invalidArgument(err.Error())
		}
		imageURL, err = s.storage.Upload(ctx, data, contentType)
		if err != nil {
			s.log.WithError(err).WithField("user_id", callerID.Hex()).Error("image upload failed")
			return nil, upstream("image upload failed")
		}
	}

	post := &models.Post{
		UserID:   callerID,
		Text:     text,
		ImageURL: imageURL,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	s.metrics.RecordPostCreated()
	return post, nil
}

// ToggleLike flips the caller's membership in the post's likes set and
// returns the resulting set. Liking emits exactly one kudos notification to
// the post owner; unliking is silent. The post document is mutated first,
// then the caller's liked_posts set; both are atomic set operations, no
// transaction spans them.
func (s *EngagementService) ToggleLike(ctx context.Context, callerID, postID primitive.ObjectID) ([]primitive.ObjectID, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, notFound("post not found")
		}
		return nil, err
	}

	if containsID(post.Likes, callerID) {
		if err := s.posts.RemoveLike(ctx, postID, callerID); err != nil {
			return nil, err
		}
		if err := s.users.RemoveLikedPost(ctx, callerID, postID); err != nil {
			return nil, err
		}

		s.metrics.RecordUnlike()
		return withoutID(post.Likes, callerID), nil
	}

	if post.UserID == callerID {
		return nil, unauthorized("you cannot like your own post")
	}

	actor, err := s.users.GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, notFound("user not found")
		}
		return nil, err
	}

	if err := s.posts.AddLike(ctx, postID, callerID); err != nil {
		return nil, err
	}
	if err := s.users.AddLikedPost(ctx, callerID, postID); err != nil {
		return nil, err
	}

	err = s.notifier.Emit(
		post.UserID.Hex(),
		callerID.Hex(),
		models.NotificationCategoryKudos,
		actor.ProfileImg,
		"New Kudos",
		fmt.Sprintf("%s gave you kudos on your post!", actor.Username),
		"/post/"+postID.Hex(),
	)
	if err != nil {
		return nil, upstream("failed to persist notification")
	}

	s.metrics.RecordLike()
	return append(post.Likes, callerID), nil
}

// CommentOnPost appends a comment to the post and notifies the post owner.
// Unlike self-like, a self-comment is not suppressed: the owner is notified
// of every comment, including their own.
func (s *EngagementService) CommentOnPost(ctx context.Context, callerID, postID primitive.ObjectID, text string) (*models.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalidArgument("comment must have text")
	}

	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, notFound("post not found")
		}
		return nil, err
	}

	actor, err := s.users.GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, notFound("user not found")
		}
		return nil, err
	}

	comment := models.Comment{
		UserID:    callerID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.posts.AppendComment(ctx, postID, comment); err != nil {
		return nil, err
	}

	err = s.notifier.Emit(
		post.UserID.Hex(),
		callerID.Hex(),
		models.NotificationCategoryComment,
		actor.ProfileImg,
		"New Comment",
		fmt.Sprintf("%s commented on your post!", actor.Username),
		"/post/"+postID.Hex(),
	)
	if err != nil {
		return nil, upstream("failed to persist notification")
	}

	s.metrics.RecordComment()
	post.Comments = append(post.Comments, comment)
	return post, nil
}

// DeletePost removes the caller's post. An associated media asset is released
// before the record is deleted so no media is stranded by a failed record
// delete. A failed asset deletion is logged and does not block the record
// deletion.
func (s *EngagementService) DeletePost(ctx context.Context, callerID, postID primitive.ObjectID) error {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return notFound("post not found")
		}
		return err
	}

	if post.UserID != callerID {
		return unauthorized("you are not authorized to delete this post")
	}

	if post.ImageURL != "" {
		assetID := media.AssetIDFromURL(post.ImageURL)
		if err := s.storage.Delete(ctx, assetID); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"post_id":  postID.Hex(),
				"asset_id": assetID,
			}).Warn("asset deletion failed, deleting post record anyway")
		}
	}

	if err := s.posts.DeletePost(ctx, postID); err != nil {
		return err
	}

	s.metrics.RecordPostDeleted()
	return nil
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func withoutID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	filtered := make([]primitive.ObjectID, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}
