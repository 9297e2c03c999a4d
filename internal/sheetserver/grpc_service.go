// Package sheetserver implements the gRPC SheetService: character lifecycle
// plus the rules resolvers for boosts, specializations, skills, and spells.
package sheetserver

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/soren-hale/charforge/internal/catalog"
	"github.com/soren-hale/charforge/internal/game/character"
	"github.com/soren-hale/charforge/internal/game/rules"
	sheetv1 "github.com/soren-hale/charforge/internal/sheetserver/sheetv1"
	"github.com/soren-hale/charforge/internal/storage/postgres"
)

// CharacterStore persists character sheets.
type CharacterStore interface {
	Create(ctx context.Context, c *character.Character) (*character.Character, error)
	GetByID(ctx context.Context, id string) (*character.Character, error)
	ListByAccount(ctx context.Context, accountID int64) ([]*character.Character, error)
	Save(ctx context.Context, c *character.Character) error
	Delete(ctx context.Context, id string) error
}

// AccountStore persists and authenticates player accounts. Characters carry a
// foreign key to their owning account, so account creation is part of the
// service surface rather than an out-of-band concern.
type AccountStore interface {
	Create(ctx context.Context, username, password string) (postgres.Account, error)
	Authenticate(ctx context.Context, username, password string) (postgres.Account, error)
}

// SheetServiceServer implements the gRPC SheetService.
//
// Mutating RPCs are resolver-shaped: an invalid selection never fails the
// call, it returns the unchanged sheet with changed = false. Errors are
// reserved for missing characters and storage failures.
type SheetServiceServer struct {
	sheetv1.UnimplementedSheetServiceServer
	catalog     *catalog.Catalog
	chars       CharacterStore
	accounts    AccountStore
	eligibility *rules.Eligibility
	boostCfg    rules.BoostConfig
	overLimit   rules.OverLimitPolicy
	logger      *zap.Logger
}

// NewSheetServiceServer creates a SheetServiceServer with the given dependencies.
//
// Precondition: cat, chars, accounts, eligibility, and logger must be non-nil.
// Postcondition: Returns a fully initialised SheetServiceServer.
func NewSheetServiceServer(
	cat *catalog.Catalog,
	chars CharacterStore,
	accounts AccountStore,
	eligibility *rules.Eligibility,
	boostCfg rules.BoostConfig,
	overLimit rules.OverLimitPolicy,
	logger *zap.Logger,
) *SheetServiceServer {
	return &SheetServiceServer{
		catalog:     cat,
		chars:       chars,
		accounts:    accounts,
		eligibility: eligibility,
		boostCfg:    boostCfg,
		overLimit:   overLimit,
		logger:      logger,
	}
}

// CreateAccount registers a new player account.
func (s *SheetServiceServer) CreateAccount(ctx context.Context, req *sheetv1.CreateAccountRequest) (*sheetv1.AccountResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}
	acct, err := s.accounts.Create(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, postgres.ErrAccountExists) {
			return nil, status.Errorf(codes.AlreadyExists, "username %q already taken", req.Username)
		}
		s.logger.Error("creating account", zap.String("username", req.Username), zap.Error(err))
		return nil, status.Error(codes.Internal, "creating account")
	}
	s.logger.Info("account created", zap.Int64("account_id", acct.ID), zap.String("username", acct.Username))
	return &sheetv1.AccountResponse{Account: accountToProto(acct)}, nil
}

// Authenticate verifies account credentials and returns the account. Bad
// credentials and unknown usernames both map to Unauthenticated so the
// response does not reveal which usernames exist.
func (s *SheetServiceServer) Authenticate(ctx context.Context, req *sheetv1.AuthenticateRequest) (*sheetv1.AccountResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "username and password are required")
	}
	acct, err := s.accounts.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, postgres.ErrAccountNotFound) || errors.Is(err, postgres.ErrInvalidCredentials) {
			return nil, status.Error(codes.Unauthenticated, "invalid credentials")
		}
		s.logger.Error("authenticating account", zap.String("username", req.Username), zap.Error(err))
		return nil, status.Error(codes.Internal, "authenticating account")
	}
	return &sheetv1.AccountResponse{Account: accountToProto(acct)}, nil
}

func (s *SheetServiceServer) loadCharacter(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "character id is required")
	}
	c, err := s.chars.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrCharacterNotFound) {
			return nil, status.Errorf(codes.NotFound, "character %s not found", id)
		}
		s.logger.Error("loading character", zap.String("character_id", id), zap.Error(err))
		return nil, status.Error(codes.Internal, "loading character")
	}
	return c, nil
}

// respond persists the resolved character when it changed and builds the
// response. The resolvers return the input pointer untouched on an invalid
// selection, which is what changed reports.
func (s *SheetServiceServer) respond(ctx context.Context, before, after *character.Character) (*sheetv1.CharacterResponse, error) {
	changed := before != after
	if changed {
		if err := s.chars.Save(ctx, after); err != nil {
			s.logger.Error("saving character", zap.String("character_id", after.ID), zap.Error(err))
			return nil, status.Error(codes.Internal, "saving character")
		}
	}
	return &sheetv1.CharacterResponse{
		Character: sheetToProto(after),
		Changed:   changed,
	}, nil
}

// ListClasses returns every class in the catalog.
func (s *SheetServiceServer) ListClasses(ctx context.Context, req *sheetv1.ListClassesRequest) (*sheetv1.ListClassesResponse, error) {
	resp := &sheetv1.ListClassesResponse{}
	for _, cl := range s.catalog.Classes() {
		resp.Classes = append(resp.Classes, classToProto(cl))
	}
	return resp, nil
}

// ListSkills returns every skill definition in the catalog.
func (s *SheetServiceServer) ListSkills(ctx context.Context, req *sheetv1.ListSkillsRequest) (*sheetv1.ListSkillsResponse, error) {
	resp := &sheetv1.ListSkillsResponse{}
	for _, sk := range s.catalog.Skills() {
		resp.Skills = append(resp.Skills, skillToProto(sk))
	}
	return resp, nil
}

// ListFeats returns catalog feats, optionally restricted to one category.
// With a character ID the listing narrows to feats that character is
// eligible to take.
func (s *SheetServiceServer) ListFeats(ctx context.Context, req *sheetv1.ListFeatsRequest) (*sheetv1.ListFeatsResponse, error) {
	var feats []*catalog.Feat
	if req.CharacterId != "" {
		c, err := s.loadCharacter(ctx, req.CharacterId)
		if err != nil {
			return nil, err
		}
		feats = rules.EligibleFeats(s.catalog, c, req.Category)
	} else {
		for _, f := range s.catalog.Feats() {
			if req.Category != "" && f.Category != req.Category {
				continue
			}
			feats = append(feats, f)
		}
	}
	resp := &sheetv1.ListFeatsResponse{}
	for _, f := range feats {
		resp.Feats = append(resp.Feats, featToProto(f))
	}
	return resp, nil
}

// ListSpells returns every spell in the catalog.
func (s *SheetServiceServer) ListSpells(ctx context.Context, req *sheetv1.ListSpellsRequest) (*sheetv1.ListSpellsResponse, error) {
	resp := &sheetv1.ListSpellsResponse{}
	for _, sp := range s.catalog.Spells() {
		resp.Spells = append(resp.Spells, spellToProto(sp))
	}
	return resp, nil
}

// CreateCharacter builds a level 1 character of the requested class and
// persists it.
func (s *SheetServiceServer) CreateCharacter(ctx context.Context, req *sheetv1.CreateCharacterRequest) (*sheetv1.CharacterResponse, error) {
	if req.Name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	class, ok := s.catalog.ClassByID(req.ClassId)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown class %q", req.ClassId)
	}

	c, err := character.Build(req.Name, class, character.VariantFlags{GradualBoosts: req.GradualBoosts})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "building character: %v", err)
	}
	c.AccountID = req.AccountId
	c = rules.InitializeSpellbook(c, s.catalog)

	created, err := s.chars.Create(ctx, c)
	if err != nil {
		if errors.Is(err, postgres.ErrCharacterNameTaken) {
			return nil, status.Errorf(codes.AlreadyExists, "character name %q already taken", req.Name)
		}
		if errors.Is(err, postgres.ErrAccountMissing) {
			return nil, status.Errorf(codes.FailedPrecondition, "account %d does not exist", req.AccountId)
		}
		s.logger.Error("creating character", zap.String("name", req.Name), zap.Error(err))
		return nil, status.Error(codes.Internal, "creating character")
	}

	s.logger.Info("character created",
		zap.String("character_id", created.ID),
		zap.String("class", created.ClassID),
		zap.Int64("account_id", created.AccountID),
	)
	return &sheetv1.CharacterResponse{Character: sheetToProto(created), Changed: true}, nil
}

// GetCharacter fetches one character sheet by ID.
func (s *SheetServiceServer) GetCharacter(ctx context.Context, req *sheetv1.GetCharacterRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &sheetv1.CharacterResponse{Character: sheetToProto(c)}, nil
}

// ListCharacters returns all characters owned by an account.
func (s *SheetServiceServer) ListCharacters(ctx context.Context, req *sheetv1.ListCharactersRequest) (*sheetv1.ListCharactersResponse, error) {
	chars, err := s.chars.ListByAccount(ctx, req.AccountId)
	if err != nil {
		s.logger.Error("listing characters", zap.Int64("account_id", req.AccountId), zap.Error(err))
		return nil, status.Error(codes.Internal, "listing characters")
	}
	resp := &sheetv1.ListCharactersResponse{}
	for _, c := range chars {
		resp.Characters = append(resp.Characters, sheetToProto(c))
	}
	return resp, nil
}

// DeleteCharacter removes a character sheet.
func (s *SheetServiceServer) DeleteCharacter(ctx context.Context, req *sheetv1.DeleteCharacterRequest) (*sheetv1.DeleteCharacterResponse, error) {
	if req.Id == "" {
		return nil, status.Error(codes.InvalidArgument, "character id is required")
	}
	if err := s.chars.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, postgres.ErrCharacterNotFound) {
			return nil, status.Errorf(codes.NotFound, "character %s not found", req.Id)
		}
		s.logger.Error("deleting character", zap.String("character_id", req.Id), zap.Error(err))
		return nil, status.Error(codes.Internal, "deleting character")
	}
	return &sheetv1.DeleteCharacterResponse{}, nil
}

// PreviewBoosts reports the boost requirements for a level: how many picks the
// event needs, which abilities remain eligible, and the scores that would
// result from the supplied picks.
func (s *SheetServiceServer) PreviewBoosts(ctx context.Context, req *sheetv1.PreviewBoostsRequest) (*sheetv1.PreviewBoostsResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}

	level := int(req.Level)
	picks := abilitiesFromProto(req.Abilities)
	return &sheetv1.PreviewBoostsResponse{
		Required:      int32(rules.RequiredBoosts(level, c.Variants.GradualBoosts)),
		Eligible:      abilitiesToProto(rules.EligibleBoostAbilities(c, level, s.boostCfg)),
		PreviewScores: scoresToProto(rules.PreviewBoosts(c, level, picks)),
	}, nil
}

// ApplyBoosts records an ability boost event for a level.
func (s *SheetServiceServer) ApplyBoosts(ctx context.Context, req *sheetv1.ApplyBoostsRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := rules.ApplyBoosts(c, int(req.Level), abilitiesFromProto(req.Abilities), s.boostCfg)
	return s.respond(ctx, c, out)
}

// RemoveBoosts clears the boost event recorded at a level.
func (s *SheetServiceServer) RemoveBoosts(ctx context.Context, req *sheetv1.RemoveBoostsRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := rules.RemoveBoosts(c, int(req.Level))
	return s.respond(ctx, c, out)
}

// ListSpecializations returns the specialization types available to a
// character at its current level, with ineligible options filtered out.
func (s *SheetServiceServer) ListSpecializations(ctx context.Context, req *sheetv1.ListSpecializationsRequest) (*sheetv1.ListSpecializationsResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	resp := &sheetv1.ListSpecializationsResponse{}
	for _, st := range s.eligibility.AvailableSpecializations(c.ClassID, c.Level) {
		resp.Types = append(resp.Types, specializationTypeToProto(st))
	}
	return resp, nil
}

// ToggleSpecialization selects or deselects a specialization option.
func (s *SheetServiceServer) ToggleSpecialization(ctx context.Context, req *sheetv1.ToggleSpecializationRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := s.eligibility.ToggleSpecializationOption(c, req.TypeId, req.OptionId)
	return s.respond(ctx, c, out)
}

// TrainSkills replaces the character's chosen skill training set.
func (s *SheetServiceServer) TrainSkills(ctx context.Context, req *sheetv1.TrainSkillsRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := rules.ApplyTraining(c, s.catalog, req.Skills, s.overLimit)
	return s.respond(ctx, c, out)
}

// TakeFeat records a feat as taken at a character level.
func (s *SheetServiceServer) TakeFeat(ctx context.Context, req *sheetv1.TakeFeatRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := rules.TakeFeat(c, s.catalog, req.FeatId, int(req.Level))
	return s.respond(ctx, c, out)
}

// RemoveFeat retracts a previously taken feat.
func (s *SheetServiceServer) RemoveFeat(ctx context.Context, req *sheetv1.RemoveFeatRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := rules.RemoveFeat(c, req.FeatId)
	return s.respond(ctx, c, out)
}

// ListEligibleSpells lists the spells a character may learn. With a rank the
// listing covers bonus-spell candidates for that rank; without one it covers
// spellbook candidates across all castable ranks.
func (s *SheetServiceServer) ListEligibleSpells(ctx context.Context, req *sheetv1.ListEligibleSpellsRequest) (*sheetv1.ListEligibleSpellsResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}

	var spells []*catalog.Spell
	if req.Rank > 0 {
		spells = rules.EligibleBonusSpells(s.catalog, c, int(req.Rank))
	} else {
		spells = rules.EligibleSpellbookSpells(s.catalog, c)
	}

	resp := &sheetv1.ListEligibleSpellsResponse{}
	for _, sp := range spells {
		resp.Spells = append(resp.Spells, spellToProto(sp))
	}
	return resp, nil
}

// AddSpell learns a spell into the character's spellbook.
func (s *SheetServiceServer) AddSpell(ctx context.Context, req *sheetv1.AddSpellRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := rules.AddSpell(c, s.catalog, req.SpellId)
	return s.respond(ctx, c, out)
}

// RemoveSpell forgets a spell from the character's spellbook, clearing any
// daily preparation that referenced it.
func (s *SheetServiceServer) RemoveSpell(ctx context.Context, req *sheetv1.RemoveSpellRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := rules.RemoveSpell(c, s.catalog, req.SpellId)
	return s.respond(ctx, c, out)
}

// PrepareSpell sets the daily preparation. An empty spell ID clears it.
func (s *SheetServiceServer) PrepareSpell(ctx context.Context, req *sheetv1.PrepareSpellRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := rules.SetDailyPreparation(c, s.catalog, req.SpellId)
	return s.respond(ctx, c, out)
}

// SetExtraSpell assigns the bonus spell slot for a rank. An empty spell ID
// clears the slot.
func (s *SheetServiceServer) SetExtraSpell(ctx context.Context, req *sheetv1.SetExtraSpellRequest) (*sheetv1.CharacterResponse, error) {
	c, err := s.loadCharacter(ctx, req.CharacterId)
	if err != nil {
		return nil, err
	}
	out := rules.SetExtraSpell(c, s.catalog, int(req.Rank), req.SpellId)
	return s.respond(ctx, c, out)
}
