package master

import (
	"context"

	"github.com/gajikita/selaras-backend/internal/domain/master/position"
)

type PositionServiceImpl struct {
	position.PositionRepository
}

func NewPositionService(positionRepository position.PositionRepository) PositionService {
	return &PositionServiceImpl{PositionRepository: positionRepository}
}

func (s *PositionServiceImpl) Create(ctx context.Context, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.PositionRepository.Create(ctx, position.Position{
		Name:       req.Name,
		BaseSalary: req.BaseSalary,
	})
	if err != nil {
		return position.PositionResponse{}, err
	}

	return toPositionResponse(created), nil
}

func (s *PositionServiceImpl) Get(ctx context.Context, id string) (position.PositionResponse, error) {
	p, err := s.PositionRepository.GetByID(ctx, id)
	if err != nil {
		return position.PositionResponse{}, err
	}
	return toPositionResponse(p), nil
}

func (s *PositionServiceImpl) List(ctx context.Context) ([]position.PositionResponse, error) {
	positions, err := s.PositionRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, toPositionResponse(p))
	}
	return responses, nil
}

func (s *PositionServiceImpl) Update(ctx context.Context, req position.UpdatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	if err := s.PositionRepository.Update(ctx, req); err != nil {
		return position.PositionResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *PositionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.PositionRepository.Delete(ctx, id)
}

func toPositionResponse(p position.Position) position.PositionResponse {
	return position.PositionResponse{
		ID:         p.ID,
		Name:       p.Name,
		BaseSalary: p.BaseSalary,
	}
}
