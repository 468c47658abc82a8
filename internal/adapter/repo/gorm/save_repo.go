package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"survivalcraft/internal/adapter/codec"
	"survivalcraft/internal/adapter/repo/gorm/model"
	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/domain/savegame"
)

type SaveRepo struct {
	db *gorm.DB
}

func NewSaveRepo(db *gorm.DB) SaveRepo {
	return SaveRepo{db: db}
}

// Save upserts by world name. The row id is kept across overwrites.
func (r SaveRepo) Save(ctx context.Context, data savegame.Data) error {
	payload, err := codec.EncodeSave(data)
	if err != nil {
		return err
	}
	m := model.WorldSave{
		ID:        uuid.NewString(),
		WorldName: data.WorldName,
		Version:   int32(data.Version),
		Seed:      int64(data.Seed),
		Width:     int32(data.Width),
		Height:    int32(data.Height),
		SavedAt:   data.Timestamp,
		Payload:   payload,
		UpdatedAt: time.Now(),
	}
	err = conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "world_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "seed", "width", "height", "saved_at", "payload", "updated_at"}),
	}).Create(&m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: save %q", ports.ErrConflict, data.WorldName)
	}
	return err
}

func (r SaveRepo) Load(ctx context.Context, worldName string) (savegame.Data, error) {
	var m model.WorldSave
	if err := conn(ctx, r.db).Where("world_name = ?", worldName).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return savegame.Data{}, ports.ErrNotFound
		}
		return savegame.Data{}, err
	}
	return codec.DecodeSave(m.Payload)
}

func (r SaveRepo) List(ctx context.Context) ([]savegame.Summary, error) {
	var rows []model.WorldSave
	err := conn(ctx, r.db).
		Select("world_name", "version", "saved_at").
		Order("saved_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]savegame.Summary, 0, len(rows))
	for _, m := range rows {
		out = append(out, savegame.Summary{
			WorldName: m.WorldName,
			Version:   int(m.Version),
			Timestamp: m.SavedAt,
		})
	}
	return out, nil
}

func (r SaveRepo) Delete(ctx context.Context, worldName string) error {
	res := conn(ctx, r.db).Where("world_name = ?", worldName).Delete(&model.WorldSave{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
