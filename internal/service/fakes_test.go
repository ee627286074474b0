package service

import (
	"context"
	"time"

	"github.com/tarnowskisean-beep/cook-book/internal/models"
	"github.com/tarnowskisean-beep/cook-book/internal/repository"
	"github.com/tarnowskisean-beep/cook-book/internal/transfer"
)

// In-memory repository fakes shared by the service tests.

type fakeContentRepo struct {
	contents map[int64]*models.GeneratedContent
	nextID   int64
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{contents: make(map[int64]*models.GeneratedContent)}
}

func (r *fakeContentRepo) GetByID(_ context.Context, id int64) (*models.GeneratedContent, error) {
	c, ok := r.contents[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (r *fakeContentRepo) ListByItemID(_ context.Context, itemID int64) ([]*models.GeneratedContent, error) {
	var out []*models.GeneratedContent
	for _, c := range r.contents {
		if c.ItemID == itemID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeContentRepo) Create(_ context.Context, content *models.GeneratedContent) (int64, error) {
	r.nextID++
	clone := *content
	clone.ID = r.nextID
	r.contents[clone.ID] = &clone
	return clone.ID, nil
}

func (r *fakeContentRepo) UpdateStatus(_ context.Context, status string, id int64) error {
	if c, ok := r.contents[id]; ok {
		c.Status = status
	}
	return nil
}

func (r *fakeContentRepo) UpdateScript(_ context.Context, script, metrics string, id int64) error {
	if c, ok := r.contents[id]; ok {
		c.Script = script
		c.Metrics = metrics
	}
	return nil
}

func (r *fakeContentRepo) UpdateURL(_ context.Context, url string, id int64) error {
	if c, ok := r.contents[id]; ok {
		c.URL = url
	}
	return nil
}

func (r *fakeContentRepo) UpdateMetrics(_ context.Context, metrics string, id int64) error {
	if c, ok := r.contents[id]; ok {
		c.Metrics = metrics
	}
	return nil
}

type fakePostRepo struct {
	posts     map[int64]*models.Post
	scheduled []*repository.ScheduledPostRow
	nextID    int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]*models.Post)}
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakePostRepo) Create(_ context.Context, post *models.Post) (int64, error) {
	r.nextID++
	clone := *post
	clone.ID = r.nextID
	r.posts[clone.ID] = &clone
	return clone.ID, nil
}

func (r *fakePostRepo) Remove(_ context.Context, id int64) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) ListScheduled(_ context.Context, from, to time.Time) ([]*repository.ScheduledPostRow, error) {
	var out []*repository.ScheduledPostRow
	for _, row := range r.scheduled {
		if !row.ScheduledTime.Before(from) && row.ScheduledTime.Before(to) {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeItemRepo struct {
	items  map[int64]*models.Item
	nextID int64
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[int64]*models.Item)}
}

func (r *fakeItemRepo) GetByID(_ context.Context, id int64) (*models.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	clone := *i
	return &clone, nil
}

func (r *fakeItemRepo) ListByProjectID(_ context.Context, projectID int64) ([]*models.Item, error) {
	var out []*models.Item
	for _, i := range r.items {
		if i.ProjectID == projectID {
			clone := *i
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) List(_ context.Context) ([]*models.Item, error) {
	var out []*models.Item
	for _, i := range r.items {
		clone := *i
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeItemRepo) Create(_ context.Context, item *models.Item) (int64, error) {
	r.nextID++
	clone := *item
	clone.ID = r.nextID
	r.items[clone.ID] = &clone
	return clone.ID, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *models.Item) error {
	clone := *item
	r.items[item.ID] = &clone
	return nil
}

func (r *fakeItemRepo) Remove(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type fakeProjectRepo struct {
	projects map[int64]*models.Project
	nextID   int64
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[int64]*models.Project)}
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id int64) (*models.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProjectRepo) List(_ context.Context) ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range r.projects {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakeProjectRepo) Create(_ context.Context, project *models.Project) (int64, error) {
	r.nextID++
	clone := *project
	clone.ID = r.nextID
	r.projects[clone.ID] = &clone
	return clone.ID, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project *models.Project) error {
	clone := *project
	r.projects[project.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) Remove(_ context.Context, id int64) error {
	delete(r.projects, id)
	return nil
}

type fakePersonaRepo struct {
	personas map[int64]*models.Persona
	nextID   int64
}

func newFakePersonaRepo() *fakePersonaRepo {
	return &fakePersonaRepo{personas: make(map[int64]*models.Persona)}
}

func (r *fakePersonaRepo) GetByID(_ context.Context, id int64) (*models.Persona, error) {
	p, ok := r.personas[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakePersonaRepo) GetDefault(_ context.Context) (*models.Persona, error) {
	var oldest *models.Persona
	for _, p := range r.personas {
		if !p.IsDefault {
			continue
		}
		if oldest == nil || p.ID < oldest.ID {
			oldest = p
		}
	}
	if oldest == nil {
		return nil, nil
	}
	clone := *oldest
	return &clone, nil
}

func (r *fakePersonaRepo) List(_ context.Context) ([]*models.Persona, error) {
	var out []*models.Persona
	for _, p := range r.personas {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *fakePersonaRepo) Create(_ context.Context, persona *models.Persona) (int64, error) {
	r.nextID++
	clone := *persona
	clone.ID = r.nextID
	r.personas[clone.ID] = &clone
	return clone.ID, nil
}

func (r *fakePersonaRepo) Update(_ context.Context, persona *models.Persona) error {
	clone := *persona
	r.personas[persona.ID] = &clone
	return nil
}

func (r *fakePersonaRepo) UpdateTraits(_ context.Context, id int64, voiceSettings, personalityTraits, autopilotSettings string) error {
	if p, ok := r.personas[id]; ok {
		p.VoiceSettings = voiceSettings
		p.PersonalityTraits = personalityTraits
		p.AutopilotSettings = autopilotSettings
	}
	return nil
}

func (r *fakePersonaRepo) UpdateAvatar(_ context.Context, id int64, avatarURL string) error {
	if p, ok := r.personas[id]; ok {
		p.AvatarURL = avatarURL
	}
	return nil
}

// fakeCompletion records the last compiled pair and returns a canned answer.
type fakeCompletion struct {
	lastSystem string
	lastUser   string
	lastOpts   transfer.CompletionOptions
	response   string
	err        error
}

func (f *fakeCompletion) Complete(_ context.Context, systemPrompt, userPrompt string, opts transfer.CompletionOptions) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userPrompt
	f.lastOpts = opts
	return f.response, f.err
}

type fakeRender struct {
	lastPrompt string
	lastSeed   string
	requestID  string
}

func (f *fakeRender) SubmitVideo(_ context.Context, prompt, seedImageURL string) (string, error) {
	f.lastPrompt = prompt
	f.lastSeed = seedImageURL
	return f.requestID, nil
}

func (f *fakeRender) GenerateImage(_ context.Context, prompt, aspectRatio string) (string, error) {
	f.lastPrompt = prompt
	return "https://cdn.example.com/image.png", nil
}

func (f *fakeRender) CheckStatus(_ context.Context, requestID string) (*transfer.RenderStatus, error) {
	return &transfer.RenderStatus{State: transfer.JobStateQueued}, nil
}

func (f *fakeRender) Await(_ context.Context, requestID string) (string, error) {
	return "https://cdn.example.com/video.mp4", nil
}
