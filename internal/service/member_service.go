package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/ulsa-utsa/ulsa-backend/internal/config"
	"github.com/ulsa-utsa/ulsa-backend/internal/model"
	"github.com/ulsa-utsa/ulsa-backend/internal/repository"
)

// gradYearWindow bounds graduation year to the signup form's six-year
// range, enforced server-side as well: current year through current year+5.
const gradYearWindow = 5

// memberListCacheTTL keeps the listing cache short-lived; it is also
// invalidated on every successful registration.
const memberListCacheTTL = 30 * time.Second

var (
	// ErrGraduationYearOutOfRange means graduationYear did not parse as an
	// integer or falls outside the allowed window.
	ErrGraduationYearOutOfRange = errors.New("graduation year out of range")

	// ErrAlreadyRegistered means another member already uses the email or
	// UTSA ID.
	ErrAlreadyRegistered = errors.New("email or UTSA ID already registered")
)

type MemberService interface {
	Register(ctx context.Context, req *model.RegisterMemberRequest) (*model.Member, error)
	ListMembers(ctx context.Context) ([]*model.Member, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
	rdb        *redis.Client // nil disables the listing cache
	log        zerolog.Logger
}

func NewMemberService(memberRepo repository.MemberRepository, rdb *redis.Client, log zerolog.Logger) MemberService {
	return &memberService{memberRepo: memberRepo, rdb: rdb, log: log}
}

// Register validates the graduation year, runs the duplicate probe, and
// inserts the member with the fixed Member position. Field presence and
// format are already enforced at the binding layer; the unique constraints
// on email and school_id catch any concurrent duplicate that slips past
// the probe.
func (s *memberService) Register(ctx context.Context, req *model.RegisterMemberRequest) (*model.Member, error) {
	gradYear, err := strconv.Atoi(req.GraduationYear)
	if err != nil {
		return nil, ErrGraduationYearOutOfRange
	}
	currentYear := time.Now().Year()
	if gradYear < currentYear || gradYear > currentYear+gradYearWindow {
		return nil, ErrGraduationYearOutOfRange
	}

	exists, err := s.memberRepo.ExistsByEmailOrSchoolID(ctx, req.Email, req.UlsaID)
	if err != nil {
		s.log.Error().Err(err).Msg("register member: duplicate check failed")
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	member := &model.Member{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		SchoolID:  req.UlsaID,
		Major:     req.Major,
		GradYear:  gradYear,
		Position:  model.PositionMember,
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateMember) {
			return nil, ErrAlreadyRegistered
		}
		s.log.Error().Err(err).Msg("register member: insert failed")
		return nil, err
	}

	s.invalidateListCache(ctx)

	return member, nil
}

// ListMembers returns every member, most recent signup first, serving from
// the Redis cache when one is configured.
func (s *memberService) ListMembers(ctx context.Context) ([]*model.Member, error) {
	key := config.CacheKey.MemberListKey()

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var members []*model.Member
			if err := json.Unmarshal([]byte(raw), &members); err == nil {
				return members, nil
			}
			// Corrupt cache entry; fall through to the database.
			s.rdb.Del(ctx, key)
		}
	}

	members, err := s.memberRepo.ListAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list members: query failed")
		return nil, err
	}

	if s.rdb != nil {
		if buf, err := json.Marshal(members); err == nil {
			if err := s.rdb.Set(ctx, key, buf, memberListCacheTTL).Err(); err != nil {
				s.log.Warn().Err(err).Msg("list members: cache fill failed")
			}
		}
	}

	return members, nil
}

// invalidateListCache drops the cached listing after a successful
// registration. Best effort: a stale entry expires within the TTL anyway.
func (s *memberService) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, config.CacheKey.MemberListKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("register member: cache invalidation failed")
	}
}
