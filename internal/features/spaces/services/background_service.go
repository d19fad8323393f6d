package spaces_services

import (
	"log/slog"

	spaces_repositories "spacehub-backend/internal/features/spaces/repositories"

	"github.com/robfig/cron/v3"
)

// MembershipReconcileService sweeps membership rows whose space no
// longer exists. Space deletion is transactional, so orphans only appear
// after manual data edits or crashes mid-migration; the sweep keeps the
// invariant "no membership references a missing space" holding anyway.
type MembershipReconcileService struct {
	membershipRepository *spaces_repositories.MembershipRepository
	logger               *slog.Logger
}

func (s *MembershipReconcileService) Run() {
	s.reconcile()

	c := cron.New()

	_, err := c.AddFunc("@every 1h", s.reconcile)
	if err != nil {
		s.logger.Error("Failed to schedule membership reconciliation", "error", err)
		return
	}

	c.Run()
}

func (s *MembershipReconcileService) reconcile() {
	removed, err := s.membershipRepository.DeleteOrphanedMemberships()
	if err != nil {
		s.logger.Error("Membership reconciliation failed", "error", err)
		return
	}

	if removed > 0 {
		s.logger.Warn("Removed orphaned space memberships", "count", removed)
	}
}
