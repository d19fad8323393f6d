package spaces_services

import (
	"errors"
	"fmt"
	"strings"

	audit_logs "spacehub-backend/internal/features/audit_logs"
	spaces_dto "spacehub-backend/internal/features/spaces/dto"
	spaces_models "spacehub-backend/internal/features/spaces/models"
	spaces_repositories "spacehub-backend/internal/features/spaces/repositories"
	users_enums "spacehub-backend/internal/features/users/enums"
	users_models "spacehub-backend/internal/features/users/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpaceService struct {
	spaceRepository      *spaces_repositories.SpaceRepository
	membershipRepository *spaces_repositories.MembershipRepository
	auditLogService      *audit_logs.AuditLogService
}

func (s *SpaceService) CreateSpace(
	request *spaces_dto.CreateSpaceRequestDTO,
	owner *users_models.User,
) (*spaces_dto.CreateSpaceResponseDTO, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, errors.New("space name is required")
	}

	space := &spaces_models.Space{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: owner.ID,
	}

	membership := &spaces_models.SpaceMembership{
		UserID: owner.ID,
		Role:   users_enums.SpaceRoleOwner,
	}

	if err := s.spaceRepository.CreateSpaceWithOwner(space, membership); err != nil {
		return nil, fmt.Errorf("failed to create space: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Space created: %s", space.Name),
		&owner.ID,
		&space.ID,
	)

	return &spaces_dto.CreateSpaceResponseDTO{
		Success: true,
		Space: spaces_dto.SpaceDTO{
			ID:      space.ID,
			Name:    space.Name,
			OwnerID: space.OwnerID,
		},
	}, nil
}

func (s *SpaceService) GetUserSpaces(
	user *users_models.User,
) (*spaces_dto.ListSpacesResponseDTO, error) {
	spaces, err := s.spaceRepository.GetSpacesByOwner(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user spaces: %w", err)
	}

	return &spaces_dto.ListSpacesResponseDTO{
		Spaces: spaces,
	}, nil
}

func (s *SpaceService) GetSpace(
	spaceID uuid.UUID,
	user *users_models.User,
) (*spaces_models.Space, error) {
	space, err := s.spaceRepository.GetSpaceByID(spaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("space not found")
		}

		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	canView, err := s.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view space")
	}

	return space, nil
}

func (s *SpaceService) UpdateSpaceSettings(
	spaceID uuid.UUID,
	request *spaces_dto.UpdateSpaceSettingsRequestDTO,
	user *users_models.User,
) (*spaces_models.Space, error) {
	space, err := s.spaceRepository.GetSpaceByID(spaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("space not found")
		}

		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	if space.OwnerID != user.ID {
		return nil, errors.New("only space owner can update space settings")
	}

	space.UpdateSettings(&spaces_models.SpaceSettings{
		DefaultView:   request.DefaultView,
		Notifications: request.Notifications,
		AccentColor:   request.AccentColor,
	})

	if err := s.spaceRepository.UpdateSpace(space); err != nil {
		return nil, fmt.Errorf("failed to update space settings: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Space settings updated: %s", space.Name),
		&user.ID,
		&space.ID,
	)

	return space, nil
}

func (s *SpaceService) DeleteSpace(spaceID uuid.UUID, user *users_models.User) error {
	space, err := s.spaceRepository.GetSpaceByID(spaceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("space not found")
		}

		return fmt.Errorf("failed to get space: %w", err)
	}

	if space.OwnerID != user.ID {
		return errors.New("only space owner can delete space")
	}

	if err := s.spaceRepository.DeleteSpaceWithMemberships(spaceID); err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Space deleted: %s", space.Name),
		&user.ID,
		&spaceID,
	)

	return nil
}

func (s *SpaceService) GetSpaceMembers(
	spaceID uuid.UUID,
	user *users_models.User,
) (*spaces_dto.GetMembersResponseDTO, error) {
	canView, err := s.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view space members")
	}

	members, err := s.membershipRepository.GetSpaceMembers(spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get space members: %w", err)
	}

	return &spaces_dto.GetMembersResponseDTO{
		Members: members,
	}, nil
}

func (s *SpaceService) GetSpaceAuditLogs(
	spaceID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	canView, err := s.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view space audit logs")
	}

	return s.auditLogService.GetSpaceAuditLogs(spaceID, request)
}

func (s *SpaceService) CanUserAccessSpace(
	spaceID uuid.UUID,
	user *users_models.User,
) (bool, error) {
	role, err := s.membershipRepository.GetUserSpaceRole(spaceID, user.ID)
	if err != nil {
		return false, err
	}

	return role != nil, nil
}
