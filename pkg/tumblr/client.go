package tumblr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"github.com/tinyland-inc/tumblweed/pkg/npf"
)

// ErrNoPoll is returned when a post contains no poll block.
var ErrNoPoll = errors.New("post contains no poll")

// ErrNoFollowTarget is returned when neither a blog URL nor an email was
// given to Follow or Unfollow.
var ErrNoFollowTarget = errors.New("follow target needs a blog url or an email")

// ErrAmbiguousFollowTarget is returned when both a blog URL and an email
// were given; the API accepts exactly one.
var ErrAmbiguousFollowTarget = errors.New("follow target takes a blog url or an email, not both")

// Client wraps the API for one default blog. All mutating calls require
// the token to be authorized for that blog.
type Client struct {
	blog      string
	transport *Transport
	log       *slog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL     string
	log         *slog.Logger
	tokenSource oauth2.TokenSource
	transport   *Transport
}

// WithBaseURL points the client at a different API root, e.g. a test
// server.
func WithBaseURL(u string) Option {
	return func(o *clientOptions) { o.baseURL = u }
}

// WithLogger sets the structured logger used for request logging.
func WithLogger(log *slog.Logger) Option {
	return func(o *clientOptions) { o.log = log }
}

// WithTokenSource replaces the static token with a caller-managed source.
// Token acquisition and refresh stay the caller's problem.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(o *clientOptions) { o.tokenSource = ts }
}

// WithTransport injects a fully built transport, overriding the base URL
// and token options.
func WithTransport(t *Transport) Option {
	return func(o *clientOptions) { o.transport = t }
}

// NewClient builds a client for the given blog using a pre-obtained OAuth2
// access token.
func NewClient(blog, accessToken string, opts ...Option) *Client {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = slog.Default()
	}
	if o.transport == nil {
		ts := o.tokenSource
		if ts == nil && accessToken != "" {
			ts = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		}
		o.transport = NewTransport(o.baseURL, ts, o.log)
	}
	return &Client{blog: blog, transport: o.transport, log: o.log}
}

// Blog returns the client's default blog name.
func (c *Client) Blog() string { return c.blog }

func (c *Client) blogOrDefault(blog string) string {
	if blog == "" {
		return c.blog
	}
	return blog
}

// PostOption configures post creation and editing.
type PostOption func(*postParams)

type postParams struct {
	tags      []string
	state     string
	publishOn time.Time
}

// WithTags sets the post's tags.
func WithTags(tags ...string) PostOption {
	return func(p *postParams) { p.tags = tags }
}

// WithState sets the post state ("queue", "draft", "private").
func WithState(state string) PostOption {
	return func(p *postParams) { p.state = state }
}

// WithPublishOn schedules the post for a future time. Only meaningful
// together with the queue state.
func WithPublishOn(t time.Time) PostOption {
	return func(p *postParams) { p.publishOn = t }
}

func buildPostBody(content *npf.Content, opts []PostOption) map[string]any {
	var p postParams
	for _, opt := range opts {
		opt(&p)
	}
	body := map[string]any{
		"content": content.Blocks,
		"layout":  content.Layout,
		"tags":    strings.Join(p.tags, ", "),
	}
	if p.state != "" {
		body["state"] = p.state
	}
	if !p.publishOn.IsZero() {
		body["publish_on"] = p.publishOn.UTC().Format(time.RFC3339)
	}
	return body
}

// CreatePost compiles the blocks and creates an NPF post on the client's
// blog.
//
// See: https://www.tumblr.com/docs/en/api/v2#posts---createreblog-a-post-neue-post-format
func (c *Client) CreatePost(ctx context.Context, blocks []npf.Block, opts ...PostOption) (json.RawMessage, error) {
	content, err := npf.Compile(blocks...)
	if err != nil {
		return nil, err
	}
	c.log.Debug("creating post", "blog", c.blog, "blocks", len(content.Blocks), "files", len(content.Files))
	path := fmt.Sprintf("/blog/%s/posts", c.blog)
	return c.transport.Post(ctx, path, buildPostBody(content, opts), content.Files)
}

// QueuePost adds a post to the blog's queue. A shorthand for CreatePost
// with the queue state.
func (c *Client) QueuePost(ctx context.Context, blocks []npf.Block, opts ...PostOption) (json.RawMessage, error) {
	return c.CreatePost(ctx, blocks, append(opts, WithState("queue"))...)
}

// GetPost fetches a post. An empty blog means the client's default blog.
func (c *Client) GetPost(ctx context.Context, blog, postID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/blog/%s/posts/%s", c.blogOrDefault(blog), postID)
	return c.transport.Get(ctx, path, nil)
}

// EditPost replaces a post's content on the client's blog.
func (c *Client) EditPost(ctx context.Context, postID string, blocks []npf.Block, opts ...PostOption) (json.RawMessage, error) {
	content, err := npf.Compile(blocks...)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/blog/%s/posts/%s", c.blog, postID)
	return c.transport.Put(ctx, path, buildPostBody(content, opts), content.Files)
}

// DeletePost deletes a post from the client's blog.
func (c *Client) DeletePost(ctx context.Context, postID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/blog/%s/posts/%s", c.blog, postID)
	return c.transport.Delete(ctx, path, nil)
}

// ReblogRequest describes one reblog. FromBlog and ToBlog default to the
// client's blog when empty.
type ReblogRequest struct {
	FromBlog string
	FromID   string
	ToBlog   string
	Content  []npf.Block
	Tags     []string
}

// Reblog fetches the parent post for its reblog key and creates a reblog
// with the given content.
func (c *Client) Reblog(ctx context.Context, req ReblogRequest) (json.RawMessage, error) {
	content, err := npf.Compile(req.Content...)
	if err != nil {
		return nil, err
	}

	parent, err := c.GetPost(ctx, req.FromBlog, req.FromID)
	if err != nil {
		return nil, fmt.Errorf("fetching parent post %s: %w", req.FromID, err)
	}
	parentUUID := gjson.GetBytes(parent, "response.tumblelog_uuid").String()
	reblogKey := gjson.GetBytes(parent, "response.reblog_key").String()
	if parentUUID == "" || reblogKey == "" {
		return nil, fmt.Errorf("parent post %s has no reblog key", req.FromID)
	}
	parentID, err := strconv.ParseInt(req.FromID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parent post id %q is not numeric: %w", req.FromID, err)
	}

	c.log.Debug("reblogging", "from", c.blogOrDefault(req.FromBlog), "post", req.FromID)
	body := buildPostBody(content, []PostOption{WithTags(req.Tags...)})
	body["parent_tumblelog_uuid"] = parentUUID
	body["reblog_key"] = reblogKey
	body["parent_post_id"] = parentID

	path := fmt.Sprintf("/blog/%s/posts", c.blogOrDefault(req.ToBlog))
	return c.transport.Post(ctx, path, body, content.Files)
}

// FollowTarget identifies a blog either by URL or by the email behind it.
// Exactly one field must be set.
type FollowTarget struct {
	URL   string
	Email string
}

func (t FollowTarget) body() (map[string]any, error) {
	switch {
	case t.URL != "" && t.Email != "":
		return nil, ErrAmbiguousFollowTarget
	case t.URL != "":
		return map[string]any{"url": t.URL}, nil
	case t.Email != "":
		return map[string]any{"email": t.Email}, nil
	default:
		return nil, ErrNoFollowTarget
	}
}

// Follow follows a blog as the authenticated user.
func (c *Client) Follow(ctx context.Context, target FollowTarget) (json.RawMessage, error) {
	body, err := target.body()
	if err != nil {
		return nil, err
	}
	return c.transport.Post(ctx, "/user/follow", body, nil)
}

// Unfollow unfollows a blog as the authenticated user.
func (c *Client) Unfollow(ctx context.Context, target FollowTarget) (json.RawMessage, error) {
	body, err := target.body()
	if err != nil {
		return nil, err
	}
	return c.transport.Post(ctx, "/user/unfollow", body, nil)
}

// Like likes a post as the authenticated user.
func (c *Client) Like(ctx context.Context, postID, reblogKey string) (json.RawMessage, error) {
	body := map[string]any{"id": postID, "reblog_key": reblogKey}
	return c.transport.Post(ctx, "/user/like", body, nil)
}

// Unlike removes a like from a post.
func (c *Client) Unlike(ctx context.Context, postID, reblogKey string) (json.RawMessage, error) {
	body := map[string]any{"id": postID, "reblog_key": reblogKey}
	return c.transport.Post(ctx, "/user/unlike", body, nil)
}

// UserInfo fetches the authenticated user's info.
func (c *Client) UserInfo(ctx context.Context) (json.RawMessage, error) {
	return c.transport.Get(ctx, "/user/info", nil)
}

// BlogInfo fetches a blog's info. An empty blog means the client's
// default blog.
func (c *Client) BlogInfo(ctx context.Context, blog string) (json.RawMessage, error) {
	path := fmt.Sprintf("/blog/%s/info", c.blogOrDefault(blog))
	return c.transport.Get(ctx, path, nil)
}

// Avatar fetches a blog's avatar as raw image bytes. Size must be one of
// the square pixel sizes the API serves (16 through 512).
func (c *Client) Avatar(ctx context.Context, blog string, size int) ([]byte, error) {
	path := fmt.Sprintf("/blog/%s/avatar/%d", c.blogOrDefault(blog), size)
	return c.transport.GetBytes(ctx, path, nil)
}

// PollResults finds the first poll in a post and returns its payload
// merged with the vote counts from the polls endpoint. Posts with several
// polls are unusual but possible; use npf.PollsFromPost with
// RawPollResults to handle every poll yourself.
func (c *Client) PollResults(ctx context.Context, blog, postID string) (npf.Payload, error) {
	blog = c.blogOrDefault(blog)

	raw, err := c.GetPost(ctx, blog, postID)
	if err != nil {
		return nil, err
	}
	var post map[string]any
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil, fmt.Errorf("decoding post %s: %w", postID, err)
	}

	polls := npf.PollsFromPost(post)
	if len(polls) == 0 {
		return nil, fmt.Errorf("%w: post %s", ErrNoPoll, postID)
	}
	poll := polls[0]
	pollID, _ := poll["client_id"].(string)

	rawResults, err := c.RawPollResults(ctx, blog, postID, pollID)
	if err != nil {
		return nil, err
	}
	var results map[string]any
	if err := json.Unmarshal(rawResults, &results); err != nil {
		return nil, fmt.Errorf("decoding poll results for %s: %w", pollID, err)
	}
	return npf.ZipPollWithResults(poll, results)
}

// RawPollResults fetches the unmerged results mapping for one poll. The
// endpoint is not officially documented; it returns answer client ids
// mapped to vote counts.
func (c *Client) RawPollResults(ctx context.Context, blog, postID, pollID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/polls/%s/%s/%s/results", c.blogOrDefault(blog), postID, pollID)
	return c.transport.Get(ctx, path, nil)
}
