package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ulsa-utsa/ulsa-backend/internal/model"
)

// ErrDuplicateMember is returned when an insert trips the unique
// constraints on email or school_id. The constraints are the backstop for
// concurrent submissions that both pass the pre-check.
var ErrDuplicateMember = errors.New("member with this email or UTSA ID already exists")

type MemberRepository interface {
	ExistsByEmailOrSchoolID(ctx context.Context, email, schoolID string) (bool, error)
	Create(ctx context.Context, member *model.Member) error
	ListAll(ctx context.Context) ([]*model.Member, error)
}

type memberRepository struct {
	db *pgxpool.Pool
}

func NewMemberRepository(db *pgxpool.Pool) MemberRepository {
	return &memberRepository{db: db}
}

// ExistsByEmailOrSchoolID reports whether any member already uses the given
// email or school ID.
func (r *memberRepository) ExistsByEmailOrSchoolID(ctx context.Context, email, schoolID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM members WHERE email = $1 OR school_id = $2)`,
		email, schoolID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create inserts a new member. The database assigns id and date_joined;
// both are written back into member.
func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO members (first_name, last_name, email, school_id, major, grad_year, position, date_joined)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		 RETURNING id, date_joined`,
		member.FirstName, member.LastName, member.Email, member.SchoolID,
		member.Major, member.GradYear, member.Position,
	).Scan(&member.ID, &member.DateJoined)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateMember
		}
		return err
	}
	return nil
}

// ListAll retrieves every member, most recent signup first.
func (r *memberRepository) ListAll(ctx context.Context) ([]*model.Member, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, first_name, last_name, email, school_id, major, grad_year, position, date_joined
		 FROM members ORDER BY date_joined DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*model.Member
	for rows.Next() {
		m := &model.Member{}
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.SchoolID,
			&m.Major, &m.GradYear, &m.Position, &m.DateJoined); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
