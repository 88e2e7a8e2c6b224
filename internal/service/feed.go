package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stride-social/backend/internal/models"
	"github.com/stride-social/backend/internal/repositories"
)

// FeedService assembles the three read paths: following-feed, own-activity
// and user-profile-feed. All three return posts newest first with every
// embedded user reference resolved to a credential-stripped public profile.
type FeedService struct {
	posts repositories.PostRepository
	users repositories.UserRepository
	log   logrus.FieldLogger
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repositories.PostRepository, userRepo repositories.UserRepository, log logrus.FieldLogger) *FeedService {
	return &FeedService{
		posts: postRepo,
		users: userRepo,
		log:   log,
	}
}

// FollowingFeed returns the posts of everyone the caller follows. An empty
// following set yields an empty feed, not an error.
func (s *FeedService) FollowingFeed(ctx context.Context, callerID primitive.ObjectID) ([]models.EnrichedPost, error) {
	user, err := s.users.GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, notFound("user not found")
		}
		return nil, err
	}

	posts, err := s.posts.GetPostsByUserIDs(ctx, user.Following)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts), nil
}

// OwnActivity returns the caller's own posts. The caller record is resolved
// by id directly.
func (s *FeedService) OwnActivity(ctx context.Context, callerID primitive.ObjectID) ([]models.EnrichedPost, error) {
	user, err := s.users.GetUserByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, notFound("user not found")
		}
		return nil, err
	}

	posts, err := s.posts.GetPostsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts), nil
}

// UserFeed returns the posts of the user with the given username.
func (s *FeedService) UserFeed(ctx context.Context, username string) ([]models.EnrichedPost, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, notFound("user not found")
		}
		return nil, err
	}

	posts, err := s.posts.GetPostsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, posts), nil
}

// enrich resolves post authors and comment authors to public profiles. Each
// distinct user is fetched once; a missing author leaves a zero profile
// rather than failing the whole feed.
func (s *FeedService) enrich(ctx context.Context, posts []models.Post) []models.EnrichedPost {
	cache := make(map[primitive.ObjectID]models.PublicProfile)

	profile := func(id primitive.ObjectID) models.PublicProfile {
		if p, ok := cache[id]; ok {
			return p
		}
		var p models.PublicProfile
		user, err := s.users.GetUserByID(ctx, id)
		if err != nil {
			s.log.WithError(err).WithField("user_id", id.Hex()).Warn("could not resolve post author")
		} else {
			p = user.ToPublic()
		}
		cache[id] = p
		return p
	}

	enriched := make([]models.EnrichedPost, len(posts))
	for i, post := range posts {
		comments := make([]models.EnrichedComment, len(post.Comments))
		for j, comment := range post.Comments {
			comments[j] = models.EnrichedComment{
				Comment: comment,
				Author:  profile(comment.UserID),
			}
		}
		enriched[i] = models.EnrichedPost{
			Post:     post,
			Author:   profile(post.UserID),
			Comments: comments,
		}
	}
	return enriched
}
