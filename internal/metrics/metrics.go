// Package metrics provides Prometheus collectors for engagement operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is the interface the service layer records against.
type Recorder interface {
	RecordPostCreated()
	RecordPostDeleted()
	RecordLike()
	RecordUnlike()
	RecordComment()
	RecordNotificationEmitted(category string)
}

// Collector registers and records Prometheus metrics.
type Collector struct {
	postsCreated  prometheus.Counter
	postsDeleted  prometheus.Counter
	likes         prometheus.Counter
	unlikes       prometheus.Counter
	comments      prometheus.Counter
	notifications *prometheus.CounterVec
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics on the given
// registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		postsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stride_posts_created_total",
			Help: "Total number of posts created",
		}),
		postsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stride_posts_deleted_total",
			Help: "Total number of posts deleted",
		}),
		likes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stride_likes_total",
			Help: "Total number of like transitions",
		}),
		unlikes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stride_unlikes_total",
			Help: "Total number of unlike transitions",
		}),
		comments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stride_comments_total",
			Help: "Total number of comments appended",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stride_notifications_emitted_total",
			Help: "Total number of notifications emitted, by category",
		}, []string{"category"}),
	}

	reg.MustRegister(
		c.postsCreated,
		c.postsDeleted,
		c.likes,
		c.unlikes,
		c.comments,
		c.notifications,
	)
	return c
}

func (c *Collector) RecordPostCreated() { c.postsCreated.Inc() }

func (c *Collector) RecordPostDeleted() { c.postsDeleted.Inc() }

func (c *Collector) RecordLike() { c.likes.Inc() }

func (c *Collector) RecordUnlike() { c.unlikes.Inc() }

func (c *Collector) RecordComment() { c.comments.Inc() }

func (c *Collector) RecordNotificationEmitted(category string) {
	c.notifications.WithLabelValues(category).Inc()
}
