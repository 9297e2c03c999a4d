package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soren-hale/charforge/internal/game/character"
)

// ErrCharacterNotFound is returned when a character lookup yields no results.
var ErrCharacterNotFound = errors.New("character not found")

// ErrCharacterNameTaken is returned when creating a character with a name already used by the account.
var ErrCharacterNameTaken = errors.New("character name already taken")

// ErrAccountMissing is returned when creating a character whose account ID
// references no account row.
var ErrAccountMissing = errors.New("owning account does not exist")

// CharacterRepository provides character persistence operations.
//
// Boost history, trained skills, feats, specialization selections, and
// spellbook state are stored as JSONB documents; the base ability scores and
// identity fields live in scalar columns.
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a CharacterRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// characterDoc bundles the JSONB column payloads for a character row.
type characterDoc struct {
	boosts          []byte
	skills          []byte
	feats           []byte
	specializations []byte
	spellbooks      []byte
}

func encodeCharacter(c *character.Character) (characterDoc, error) {
	var doc characterDoc
	var err error
	if doc.boosts, err = json.Marshal(c.Boosts); err != nil {
		return doc, fmt.Errorf("encoding boosts: %w", err)
	}
	if doc.skills, err = json.Marshal(c.Skills); err != nil {
		return doc, fmt.Errorf("encoding skills: %w", err)
	}
	if doc.feats, err = json.Marshal(c.Feats); err != nil {
		return doc, fmt.Errorf("encoding feats: %w", err)
	}
	if doc.specializations, err = json.Marshal(c.Specializations); err != nil {
		return doc, fmt.Errorf("encoding specializations: %w", err)
	}
	if doc.spellbooks, err = json.Marshal(c.Spellbooks); err != nil {
		return doc, fmt.Errorf("encoding spellbooks: %w", err)
	}
	return doc, nil
}

func decodeCharacter(c *character.Character, doc characterDoc) error {
	if err := json.Unmarshal(doc.boosts, &c.Boosts); err != nil {
		return fmt.Errorf("decoding boosts: %w", err)
	}
	if err := json.Unmarshal(doc.skills, &c.Skills); err != nil {
		return fmt.Errorf("decoding skills: %w", err)
	}
	if err := json.Unmarshal(doc.feats, &c.Feats); err != nil {
		return fmt.Errorf("decoding feats: %w", err)
	}
	if err := json.Unmarshal(doc.specializations, &c.Specializations); err != nil {
		return fmt.Errorf("decoding specializations: %w", err)
	}
	if err := json.Unmarshal(doc.spellbooks, &c.Spellbooks); err != nil {
		return fmt.Errorf("decoding spellbooks: %w", err)
	}
	return nil
}

const characterColumns = `id, account_id, name, class_id, level,
	strength, dexterity, constitution, intelligence, wisdom, charisma,
	gradual_boosts, boosts, skills, feats, specializations, spellbooks,
	created_at, updated_at`

func scanCharacter(row pgx.Row) (*character.Character, error) {
	var c character.Character
	var doc characterDoc
	err := row.Scan(
		&c.ID, &c.AccountID, &c.Name, &c.ClassID, &c.Level,
		&c.Abilities.Strength, &c.Abilities.Dexterity, &c.Abilities.Constitution,
		&c.Abilities.Intelligence, &c.Abilities.Wisdom, &c.Abilities.Charisma,
		&c.Variants.GradualBoosts,
		&doc.boosts, &doc.skills, &doc.feats, &doc.specializations, &doc.spellbooks,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := decodeCharacter(&c, doc); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new character and returns it with timestamps set.
//
// Precondition: c.ID must be a UUID; c.AccountID must reference an existing
// account; c.Name must be non-empty.
// Postcondition: Returns the stored character, ErrCharacterNameTaken if the
// account already has a character with that name, or ErrAccountMissing if the
// account does not exist.
func (r *CharacterRepository) Create(ctx context.Context, c *character.Character) (*character.Character, error) {
	doc, err := encodeCharacter(c)
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO characters
			(id, account_id, name, class_id, level,
			 strength, dexterity, constitution, intelligence, wisdom, charisma,
			 gradual_boosts, boosts, skills, feats, specializations, spellbooks)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING `+characterColumns,
		c.ID, c.AccountID, c.Name, c.ClassID, c.Level,
		c.Abilities.Strength, c.Abilities.Dexterity, c.Abilities.Constitution,
		c.Abilities.Intelligence, c.Abilities.Wisdom, c.Abilities.Charisma,
		c.Variants.GradualBoosts,
		doc.boosts, doc.skills, doc.feats, doc.specializations, doc.spellbooks,
	)

	out, err := scanCharacter(row)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrCharacterNameTaken
		}
		if isForeignKeyError(err) {
			return nil, ErrAccountMissing
		}
		return nil, fmt.Errorf("inserting character: %w", err)
	}
	return out, nil
}

// isForeignKeyError checks if a pgx error is a foreign key violation
// (SQLSTATE 23503).
func isForeignKeyError(err error) bool {
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23503"
	}
	return false
}

// GetByID retrieves a character by its UUID.
//
// Precondition: id must be non-empty.
// Postcondition: Returns the Character or ErrCharacterNotFound.
func (r *CharacterRepository) GetByID(ctx context.Context, id string) (*character.Character, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+characterColumns+` FROM characters WHERE id = $1`, id)
	c, err := scanCharacter(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCharacterNotFound
		}
		return nil, fmt.Errorf("querying character: %w", err)
	}
	return c, nil
}

// ListByAccount returns all characters for the given account ID, ordered by created_at.
//
// Precondition: accountID must be > 0.
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *CharacterRepository) ListByAccount(ctx context.Context, accountID int64) ([]*character.Character, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+characterColumns+` FROM characters
		 WHERE account_id = $1 ORDER BY created_at ASC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing characters: %w", err)
	}
	defer rows.Close()

	chars := make([]*character.Character, 0)
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning character row: %w", err)
		}
		chars = append(chars, c)
	}
	return chars, rows.Err()
}

// Save persists the full mutable state of an existing character.
//
// Precondition: c.ID must reference an existing row.
// Postcondition: Returns nil on success, ErrCharacterNotFound if no row updated.
func (r *CharacterRepository) Save(ctx context.Context, c *character.Character) error {
	doc, err := encodeCharacter(c)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE characters SET
			name = $2, class_id = $3, level = $4,
			strength = $5, dexterity = $6, constitution = $7,
			intelligence = $8, wisdom = $9, charisma = $10,
			gradual_boosts = $11,
			boosts = $12, skills = $13, feats = $14,
			specializations = $15, spellbooks = $16,
			updated_at = NOW()
		WHERE id = $1`,
		c.ID, c.Name, c.ClassID, c.Level,
		c.Abilities.Strength, c.Abilities.Dexterity, c.Abilities.Constitution,
		c.Abilities.Intelligence, c.Abilities.Wisdom, c.Abilities.Charisma,
		c.Variants.GradualBoosts,
		doc.boosts, doc.skills, doc.feats, doc.specializations, doc.spellbooks,
	)
	if err != nil {
		return fmt.Errorf("saving character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCharacterNotFound
	}
	return nil
}

// Delete removes a character row.
//
// Precondition: id must be non-empty.
// Postcondition: Returns nil on success, ErrCharacterNotFound if no row deleted.
func (r *CharacterRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCharacterNotFound
	}
	return nil
}
