// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: internal/sheetserver/sheetv1/sheet.proto

package sheetv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	SheetService_CreateAccount_FullMethodName        = "/charforge.sheet.v1.SheetService/CreateAccount"
	SheetService_Authenticate_FullMethodName         = "/charforge.sheet.v1.SheetService/Authenticate"
	SheetService_ListClasses_FullMethodName          = "/charforge.sheet.v1.SheetService/ListClasses"
	SheetService_ListSkills_FullMethodName           = "/charforge.sheet.v1.SheetService/ListSkills"
	SheetService_ListFeats_FullMethodName            = "/charforge.sheet.v1.SheetService/ListFeats"
	SheetService_ListSpells_FullMethodName           = "/charforge.sheet.v1.SheetService/ListSpells"
	SheetService_CreateCharacter_FullMethodName      = "/charforge.sheet.v1.SheetService/CreateCharacter"
	SheetService_GetCharacter_FullMethodName         = "/charforge.sheet.v1.SheetService/GetCharacter"
	SheetService_ListCharacters_FullMethodName       = "/charforge.sheet.v1.SheetService/ListCharacters"
	SheetService_DeleteCharacter_FullMethodName      = "/charforge.sheet.v1.SheetService/DeleteCharacter"
	SheetService_PreviewBoosts_FullMethodName        = "/charforge.sheet.v1.SheetService/PreviewBoosts"
	SheetService_ApplyBoosts_FullMethodName          = "/charforge.sheet.v1.SheetService/ApplyBoosts"
	SheetService_RemoveBoosts_FullMethodName         = "/charforge.sheet.v1.SheetService/RemoveBoosts"
	SheetService_ListSpecializations_FullMethodName  = "/charforge.sheet.v1.SheetService/ListSpecializations"
	SheetService_ToggleSpecialization_FullMethodName = "/charforge.sheet.v1.SheetService/ToggleSpecialization"
	SheetService_TrainSkills_FullMethodName          = "/charforge.sheet.v1.SheetService/TrainSkills"
	SheetService_TakeFeat_FullMethodName             = "/charforge.sheet.v1.SheetService/TakeFeat"
	SheetService_RemoveFeat_FullMethodName           = "/charforge.sheet.v1.SheetService/RemoveFeat"
	SheetService_ListEligibleSpells_FullMethodName   = "/charforge.sheet.v1.SheetService/ListEligibleSpells"
	SheetService_AddSpell_FullMethodName             = "/charforge.sheet.v1.SheetService/AddSpell"
	SheetService_RemoveSpell_FullMethodName          = "/charforge.sheet.v1.SheetService/RemoveSpell"
	SheetService_PrepareSpell_FullMethodName         = "/charforge.sheet.v1.SheetService/PrepareSpell"
	SheetService_SetExtraSpell_FullMethodName        = "/charforge.sheet.v1.SheetService/SetExtraSpell"
)

// SheetServiceClient is the client API for SheetService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// SheetService exposes character sheet resolution over gRPC: character
// lifecycle, ability boosts, specialization selection, skill training, and
// spell management. Mutating RPCs report whether the operation changed the
// sheet; an invalid selection leaves the sheet untouched and sets
// changed = false.
type SheetServiceClient interface {
	CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*AccountResponse, error)
	Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*AccountResponse, error)
	ListClasses(ctx context.Context, in *ListClassesRequest, opts ...grpc.CallOption) (*ListClassesResponse, error)
	ListSkills(ctx context.Context, in *ListSkillsRequest, opts ...grpc.CallOption) (*ListSkillsResponse, error)
	ListFeats(ctx context.Context, in *ListFeatsRequest, opts ...grpc.CallOption) (*ListFeatsResponse, error)
	ListSpells(ctx context.Context, in *ListSpellsRequest, opts ...grpc.CallOption) (*ListSpellsResponse, error)
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
	PreviewBoosts(ctx context.Context, in *PreviewBoostsRequest, opts ...grpc.CallOption) (*PreviewBoostsResponse, error)
	ApplyBoosts(ctx context.Context, in *ApplyBoostsRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	RemoveBoosts(ctx context.Context, in *RemoveBoostsRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	ListSpecializations(ctx context.Context, in *ListSpecializationsRequest, opts ...grpc.CallOption) (*ListSpecializationsResponse, error)
	ToggleSpecialization(ctx context.Context, in *ToggleSpecializationRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	TrainSkills(ctx context.Context, in *TrainSkillsRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	TakeFeat(ctx context.Context, in *TakeFeatRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	RemoveFeat(ctx context.Context, in *RemoveFeatRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	ListEligibleSpells(ctx context.Context, in *ListEligibleSpellsRequest, opts ...grpc.CallOption) (*ListEligibleSpellsResponse, error)
	AddSpell(ctx context.Context, in *AddSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	RemoveSpell(ctx context.Context, in *RemoveSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	PrepareSpell(ctx context.Context, in *PrepareSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	SetExtraSpell(ctx context.Context, in *SetExtraSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
}

type sheetServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSheetServiceClient(cc grpc.ClientConnInterface) SheetServiceClient {
	return &sheetServiceClient{cc}
}

func (c *sheetServiceClient) CreateAccount(ctx context.Context, in *CreateAccountRequest, opts ...grpc.CallOption) (*AccountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AccountResponse)
	err := c.cc.Invoke(ctx, SheetService_CreateAccount_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) Authenticate(ctx context.Context, in *AuthenticateRequest, opts ...grpc.CallOption) (*AccountResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AccountResponse)
	err := c.cc.Invoke(ctx, SheetService_Authenticate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ListClasses(ctx context.Context, in *ListClassesRequest, opts ...grpc.CallOption) (*ListClassesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListClassesResponse)
	err := c.cc.Invoke(ctx, SheetService_ListClasses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ListSkills(ctx context.Context, in *ListSkillsRequest, opts ...grpc.CallOption) (*ListSkillsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSkillsResponse)
	err := c.cc.Invoke(ctx, SheetService_ListSkills_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ListFeats(ctx context.Context, in *ListFeatsRequest, opts ...grpc.CallOption) (*ListFeatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFeatsResponse)
	err := c.cc.Invoke(ctx, SheetService_ListFeats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ListSpells(ctx context.Context, in *ListSpellsRequest, opts ...grpc.CallOption) (*ListSpellsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSpellsResponse)
	err := c.cc.Invoke(ctx, SheetService_ListSpells_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_CreateCharacter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) GetCharacter(ctx context.Context, in *GetCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_GetCharacter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListCharactersResponse)
	err := c.cc.Invoke(ctx, SheetService_ListCharacters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) DeleteCharacter(ctx context.Context, in *DeleteCharacterRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteCharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_DeleteCharacter_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) PreviewBoosts(ctx context.Context, in *PreviewBoostsRequest, opts ...grpc.CallOption) (*PreviewBoostsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PreviewBoostsResponse)
	err := c.cc.Invoke(ctx, SheetService_PreviewBoosts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ApplyBoosts(ctx context.Context, in *ApplyBoostsRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_ApplyBoosts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) RemoveBoosts(ctx context.Context, in *RemoveBoostsRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_RemoveBoosts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ListSpecializations(ctx context.Context, in *ListSpecializationsRequest, opts ...grpc.CallOption) (*ListSpecializationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSpecializationsResponse)
	err := c.cc.Invoke(ctx, SheetService_ListSpecializations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ToggleSpecialization(ctx context.Context, in *ToggleSpecializationRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_ToggleSpecialization_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) TrainSkills(ctx context.Context, in *TrainSkillsRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_TrainSkills_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) TakeFeat(ctx context.Context, in *TakeFeatRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_TakeFeat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) RemoveFeat(ctx context.Context, in *RemoveFeatRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_RemoveFeat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) ListEligibleSpells(ctx context.Context, in *ListEligibleSpellsRequest, opts ...grpc.CallOption) (*ListEligibleSpellsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEligibleSpellsResponse)
	err := c.cc.Invoke(ctx, SheetService_ListEligibleSpells_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) AddSpell(ctx context.Context, in *AddSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_AddSpell_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) RemoveSpell(ctx context.Context, in *RemoveSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_RemoveSpell_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) PrepareSpell(ctx context.Context, in *PrepareSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_PrepareSpell_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sheetServiceClient) SetExtraSpell(ctx context.Context, in *SetExtraSpellRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CharacterResponse)
	err := c.cc.Invoke(ctx, SheetService_SetExtraSpell_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SheetServiceServer is the server API for SheetService service.
// All implementations must embed UnimplementedSheetServiceServer
// for forward compatibility.
//
// SheetService exposes character sheet resolution over gRPC: character
// lifecycle, ability boosts, specialization selection, skill training, and
// spell management. Mutating RPCs report whether the operation changed the
// sheet; an invalid selection leaves the sheet untouched and sets
// changed = false.
type SheetServiceServer interface {
	CreateAccount(context.Context, *CreateAccountRequest) (*AccountResponse, error)
	Authenticate(context.Context, *AuthenticateRequest) (*AccountResponse, error)
	ListClasses(context.Context, *ListClassesRequest) (*ListClassesResponse, error)
	ListSkills(context.Context, *ListSkillsRequest) (*ListSkillsResponse, error)
	ListFeats(context.Context, *ListFeatsRequest) (*ListFeatsResponse, error)
	ListSpells(context.Context, *ListSpellsRequest) (*ListSpellsResponse, error)
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CharacterResponse, error)
	GetCharacter(context.Context, *GetCharacterRequest) (*CharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error)
	PreviewBoosts(context.Context, *PreviewBoostsRequest) (*PreviewBoostsResponse, error)
	ApplyBoosts(context.Context, *ApplyBoostsRequest) (*CharacterResponse, error)
	RemoveBoosts(context.Context, *RemoveBoostsRequest) (*CharacterResponse, error)
	ListSpecializations(context.Context, *ListSpecializationsRequest) (*ListSpecializationsResponse, error)
	ToggleSpecialization(context.Context, *ToggleSpecializationRequest) (*CharacterResponse, error)
	TrainSkills(context.Context, *TrainSkillsRequest) (*CharacterResponse, error)
	TakeFeat(context.Context, *TakeFeatRequest) (*CharacterResponse, error)
	RemoveFeat(context.Context, *RemoveFeatRequest) (*CharacterResponse, error)
	ListEligibleSpells(context.Context, *ListEligibleSpellsRequest) (*ListEligibleSpellsResponse, error)
	AddSpell(context.Context, *AddSpellRequest) (*CharacterResponse, error)
	RemoveSpell(context.Context, *RemoveSpellRequest) (*CharacterResponse, error)
	PrepareSpell(context.Context, *PrepareSpellRequest) (*CharacterResponse, error)
	SetExtraSpell(context.Context, *SetExtraSpellRequest) (*CharacterResponse, error)
	mustEmbedUnimplementedSheetServiceServer()
}

// UnimplementedSheetServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedSheetServiceServer struct{}

func (UnimplementedSheetServiceServer) CreateAccount(context.Context, *CreateAccountRequest) (*AccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateAccount not implemented")
}
func (UnimplementedSheetServiceServer) Authenticate(context.Context, *AuthenticateRequest) (*AccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Authenticate not implemented")
}
func (UnimplementedSheetServiceServer) ListClasses(context.Context, *ListClassesRequest) (*ListClassesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListClasses not implemented")
}
func (UnimplementedSheetServiceServer) ListSkills(context.Context, *ListSkillsRequest) (*ListSkillsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSkills not implemented")
}
func (UnimplementedSheetServiceServer) ListFeats(context.Context, *ListFeatsRequest) (*ListFeatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFeats not implemented")
}
func (UnimplementedSheetServiceServer) ListSpells(context.Context, *ListSpellsRequest) (*ListSpellsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSpells not implemented")
}
func (UnimplementedSheetServiceServer) CreateCharacter(context.Context, *CreateCharacterRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCharacter not implemented")
}
func (UnimplementedSheetServiceServer) GetCharacter(context.Context, *GetCharacterRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCharacter not implemented")
}
func (UnimplementedSheetServiceServer) ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCharacters not implemented")
}
func (UnimplementedSheetServiceServer) DeleteCharacter(context.Context, *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteCharacter not implemented")
}
func (UnimplementedSheetServiceServer) PreviewBoosts(context.Context, *PreviewBoostsRequest) (*PreviewBoostsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PreviewBoosts not implemented")
}
func (UnimplementedSheetServiceServer) ApplyBoosts(context.Context, *ApplyBoostsRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ApplyBoosts not implemented")
}
func (UnimplementedSheetServiceServer) RemoveBoosts(context.Context, *RemoveBoostsRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveBoosts not implemented")
}
func (UnimplementedSheetServiceServer) ListSpecializations(context.Context, *ListSpecializationsRequest) (*ListSpecializationsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSpecializations not implemented")
}
func (UnimplementedSheetServiceServer) ToggleSpecialization(context.Context, *ToggleSpecializationRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleSpecialization not implemented")
}
func (UnimplementedSheetServiceServer) TrainSkills(context.Context, *TrainSkillsRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TrainSkills not implemented")
}
func (UnimplementedSheetServiceServer) TakeFeat(context.Context, *TakeFeatRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method TakeFeat not implemented")
}
func (UnimplementedSheetServiceServer) RemoveFeat(context.Context, *RemoveFeatRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveFeat not implemented")
}
func (UnimplementedSheetServiceServer) ListEligibleSpells(context.Context, *ListEligibleSpellsRequest) (*ListEligibleSpellsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListEligibleSpells not implemented")
}
func (UnimplementedSheetServiceServer) AddSpell(context.Context, *AddSpellRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddSpell not implemented")
}
func (UnimplementedSheetServiceServer) RemoveSpell(context.Context, *RemoveSpellRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveSpell not implemented")
}
func (UnimplementedSheetServiceServer) PrepareSpell(context.Context, *PrepareSpellRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PrepareSpell not implemented")
}
func (UnimplementedSheetServiceServer) SetExtraSpell(context.Context, *SetExtraSpellRequest) (*CharacterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetExtraSpell not implemented")
}
func (UnimplementedSheetServiceServer) mustEmbedUnimplementedSheetServiceServer() {}
func (UnimplementedSheetServiceServer) testEmbeddedByValue()                      {}

// UnsafeSheetServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to SheetServiceServer will
// result in compilation errors.
type UnsafeSheetServiceServer interface {
	mustEmbedUnimplementedSheetServiceServer()
}

func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	// If the following call panics, it indicates UnimplementedSheetServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&SheetService_ServiceDesc, srv)
}

func _SheetService_CreateAccount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).CreateAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_CreateAccount_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).CreateAccount(ctx, req.(*CreateAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_Authenticate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AuthenticateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).Authenticate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_Authenticate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).Authenticate(ctx, req.(*AuthenticateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ListClasses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListClassesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ListClasses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ListClasses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).ListClasses(ctx, req.(*ListClassesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ListSkills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSkillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ListSkills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ListSkills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).ListSkills(ctx, req.(*ListSkillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ListFeats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFeatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ListFeats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ListFeats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).ListFeats(ctx, req.(*ListFeatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ListSpells_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSpellsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ListSpells(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ListSpells_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).ListSpells(ctx, req.(*ListSpellsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_CreateCharacter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).CreateCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_CreateCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).CreateCharacter(ctx, req.(*CreateCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_GetCharacter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).GetCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_GetCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).GetCharacter(ctx, req.(*GetCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ListCharacters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListCharactersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ListCharacters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ListCharacters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).ListCharacters(ctx, req.(*ListCharactersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_DeleteCharacter_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteCharacterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).DeleteCharacter(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_DeleteCharacter_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).DeleteCharacter(ctx, req.(*DeleteCharacterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_PreviewBoosts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewBoostsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).PreviewBoosts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_PreviewBoosts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).PreviewBoosts(ctx, req.(*PreviewBoostsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ApplyBoosts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ApplyBoostsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ApplyBoosts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ApplyBoosts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).ApplyBoosts(ctx, req.(*ApplyBoostsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_RemoveBoosts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveBoostsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).RemoveBoosts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_RemoveBoosts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).RemoveBoosts(ctx, req.(*RemoveBoostsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ListSpecializations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSpecializationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ListSpecializations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ListSpecializations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).ListSpecializations(ctx, req.(*ListSpecializationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ToggleSpecialization_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ToggleSpecializationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ToggleSpecialization(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ToggleSpecialization_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).ToggleSpecialization(ctx, req.(*ToggleSpecializationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_TrainSkills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TrainSkillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).TrainSkills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_TrainSkills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).TrainSkills(ctx, req.(*TrainSkillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_TakeFeat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TakeFeatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).TakeFeat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_TakeFeat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).TakeFeat(ctx, req.(*TakeFeatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_RemoveFeat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveFeatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).RemoveFeat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_RemoveFeat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).RemoveFeat(ctx, req.(*RemoveFeatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_ListEligibleSpells_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEligibleSpellsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).ListEligibleSpells(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_ListEligibleSpells_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).ListEligibleSpells(ctx, req.(*ListEligibleSpellsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_AddSpell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddSpellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).AddSpell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_AddSpell_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).AddSpell(ctx, req.(*AddSpellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_RemoveSpell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RemoveSpellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).RemoveSpell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_RemoveSpell_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).RemoveSpell(ctx, req.(*RemoveSpellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_PrepareSpell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrepareSpellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).PrepareSpell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_PrepareSpell_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).PrepareSpell(ctx, req.(*PrepareSpellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _SheetService_SetExtraSpell_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetExtraSpellRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SheetServiceServer).SetExtraSpell(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SheetService_SetExtraSpell_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SheetServiceServer).SetExtraSpell(ctx, req.(*SetExtraSpellRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// SheetService_ServiceDesc is the grpc.ServiceDesc for SheetService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var SheetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "charforge.sheet.v1.SheetService",
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateAccount",
			Handler:    _SheetService_CreateAccount_Handler,
		},
		{
			MethodName: "Authenticate",
			Handler:    _SheetService_Authenticate_Handler,
		},
		{
			MethodName: "ListClasses",
			Handler:    _SheetService_ListClasses_Handler,
		},
		{
			MethodName: "ListSkills",
			Handler:    _SheetService_ListSkills_Handler,
		},
		{
			MethodName: "ListFeats",
			Handler:    _SheetService_ListFeats_Handler,
		},
		{
			MethodName: "ListSpells",
			Handler:    _SheetService_ListSpells_Handler,
		},
		{
			MethodName: "CreateCharacter",
			Handler:    _SheetService_CreateCharacter_Handler,
		},
		{
			MethodName: "GetCharacter",
			Handler:    _SheetService_GetCharacter_Handler,
		},
		{
			MethodName: "ListCharacters",
			Handler:    _SheetService_ListCharacters_Handler,
		},
		{
			MethodName: "DeleteCharacter",
			Handler:    _SheetService_DeleteCharacter_Handler,
		},
		{
			MethodName: "PreviewBoosts",
			Handler:    _SheetService_PreviewBoosts_Handler,
		},
		{
			MethodName: "ApplyBoosts",
			Handler:    _SheetService_ApplyBoosts_Handler,
		},
		{
			MethodName: "RemoveBoosts",
			Handler:    _SheetService_RemoveBoosts_Handler,
		},
		{
			MethodName: "ListSpecializations",
			Handler:    _SheetService_ListSpecializations_Handler,
		},
		{
			MethodName: "ToggleSpecialization",
			Handler:    _SheetService_ToggleSpecialization_Handler,
		},
		{
			MethodName: "TrainSkills",
			Handler:    _SheetService_TrainSkills_Handler,
		},
		{
			MethodName: "TakeFeat",
			Handler:    _SheetService_TakeFeat_Handler,
		},
		{
			MethodName: "RemoveFeat",
			Handler:    _SheetService_RemoveFeat_Handler,
		},
		{
			MethodName: "ListEligibleSpells",
			Handler:    _SheetService_ListEligibleSpells_Handler,
		},
		{
			MethodName: "AddSpell",
			Handler:    _SheetService_AddSpell_Handler,
		},
		{
			MethodName: "RemoveSpell",
			Handler:    _SheetService_RemoveSpell_Handler,
		},
		{
			MethodName: "PrepareSpell",
			Handler:    _SheetService_PrepareSpell_Handler,
		},
		{
			MethodName: "SetExtraSpell",
			Handler:    _SheetService_SetExtraSpell_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "internal/sheetserver/sheetv1/sheet.proto",
}
