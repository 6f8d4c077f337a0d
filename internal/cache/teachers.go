package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"yogastudio/web/internal/models"
)

const (
	teacherListKey   = "yoga:teachers"
	teacherKeyPrefix = "yoga:teacher:"
)

// TeacherSource is the backend side of the teacher collaborator.
type TeacherSource interface {
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	GetTeacher(ctx context.Context, id string) (models.Teacher, error)
}

// Teachers is a read-through cache in front of a TeacherSource. Redis
// failures are logged and fall back to the source.
type Teachers struct {
	source TeacherSource
	redis  *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewTeachers(source TeacherSource, client *redis.Client, ttl time.Duration, log zerolog.Logger) *Teachers {
	return &Teachers{
		source: source,
		redis:  client,
		ttl:    ttl,
		log:    log,
	}
}

func (t *Teachers) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if t.lookup(ctx, teacherListKey, &teachers) {
		return teachers, nil
	}

	teachers, err := t.source.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	t.store(ctx, teacherListKey, teachers)
	return teachers, nil
}

func (t *Teachers) GetTeacher(ctx context.Context, id string) (models.Teacher, error) {
	key := teacherKeyPrefix + id

	var teacher models.Teacher
	if t.lookup(ctx, key, &teacher) {
		return teacher, nil
	}

	teacher, err := t.source.GetTeacher(ctx, id)
	if err != nil {
		return models.Teacher{}, err
	}
	t.store(ctx, key, teacher)
	return teacher, nil
}

func (t *Teachers) lookup(ctx context.Context, key string, out any) bool {
	raw, err := t.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			t.log.Warn().Err(err).Str("key", key).Msg("teacher cache read failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("teacher cache entry corrupt")
		return false
	}
	return true
}

func (t *Teachers) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := t.redis.Set(ctx, key, raw, t.ttl).Err(); err != nil {
		t.log.Warn().Err(err).Str("key", key).Msg("teacher cache write failed")
	}
}
