package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"menageBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
INSERT INTO users (name, surname, phone, email, password, city, role, years_of_exp, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		user.Name, user.Surname, user.Phone, user.Email, user.Password,
		user.City, user.Role, user.YearsOfExp,
	)
	if err != nil {
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	user.Password = ""
	return user, nil
}

const userColumns = `
	u.id, u.name, u.surname, u.phone, u.email, u.password, u.city, u.role,
	u.years_of_exp, u.review_rating, u.reviews_count, u.avatar_path, u.created_at, u.updated_at
`

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.Phone, &u.Email, &u.Password, &u.City, &u.Role,
		&u.YearsOfExp, &u.ReviewRating, &u.ReviewsCount, &u.AvatarPath, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users u WHERE u.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	return user, err
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users u WHERE u.email = ?`, email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, nil
	}
	return user, err
}

func (r *UserRepository) GetUserByPhone(ctx context.Context, phone string) (models.User, error) {
	user, err := scanUser(r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users u WHERE u.phone = ?`, phone))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, nil
	}
	return user, err
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) error {
	query := `
UPDATE users
SET name = ?, surname = ?, city = ?, years_of_exp = ?, updated_at = NOW()
WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, query, user.Name, user.Surname, user.City, user.YearsOfExp, user.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashed string) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE users SET password = ?, updated_at = NOW() WHERE id = ?`, hashed, userID)
	return err
}

func (r *UserRepository) UpdateUserRating(ctx context.Context, userID int, rating float64, count int) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE users SET review_rating = ?, reviews_count = ?, updated_at = NOW() WHERE id = ?`,
		rating, count, userID)
	return err
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	return err
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `
INSERT INTO sessions (user_id, role, refresh_token, expires_at)
VALUES (?, ?, ?, ?)
ON DUPLICATE KEY UPDATE refresh_token = VALUES(refresh_token), expires_at = VALUES(expires_at)
	`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.Role, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var s models.Session
	err := r.DB.QueryRowContext(ctx,
		`SELECT user_id, role, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`,
		refreshToken,
	).Scan(&s.UserID, &s.Role, &s.RefreshToken, &s.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	return s, err
}

func (r *UserRepository) DeleteExpiredSessions(ctx context.Context, before time.Time) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < ?`, before)
	return err
}
