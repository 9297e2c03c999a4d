// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: internal/sheetserver/sheetv1/sheet.proto

package sheetv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Spellcasting struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Feature       string                 `protobuf:"bytes,1,opt,name=feature,proto3" json:"feature,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Tradition     string                 `protobuf:"bytes,3,opt,name=tradition,proto3" json:"tradition,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Spellcasting) Reset() {
	*x = Spellcasting{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Spellcasting) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Spellcasting) ProtoMessage() {}

func (x *Spellcasting) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Spellcasting.ProtoReflect.Descriptor instead.
func (*Spellcasting) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{0}
}

func (x *Spellcasting) GetFeature() string {
	if x != nil {
		return x.Feature
	}
	return ""
}

func (x *Spellcasting) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Spellcasting) GetTradition() string {
	if x != nil {
		return x.Tradition
	}
	return ""
}

type Class struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name              string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description       string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	KeyAbility        string                 `protobuf:"bytes,4,opt,name=key_ability,json=keyAbility,proto3" json:"key_ability,omitempty"`
	HitPointsPerLevel int32                  `protobuf:"varint,5,opt,name=hit_points_per_level,json=hitPointsPerLevel,proto3" json:"hit_points_per_level,omitempty"`
	BaseSkillSlots    int32                  `protobuf:"varint,6,opt,name=base_skill_slots,json=baseSkillSlots,proto3" json:"base_skill_slots,omitempty"`
	TrainedSkills     []string               `protobuf:"bytes,7,rep,name=trained_skills,json=trainedSkills,proto3" json:"trained_skills,omitempty"`
	Spellcasting      *Spellcasting          `protobuf:"bytes,8,opt,name=spellcasting,proto3" json:"spellcasting,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Class) Reset() {
	*x = Class{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Class) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Class) ProtoMessage() {}

func (x *Class) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Class.ProtoReflect.Descriptor instead.
func (*Class) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{1}
}

func (x *Class) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Class) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Class) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Class) GetKeyAbility() string {
	if x != nil {
		return x.KeyAbility
	}
	return ""
}

func (x *Class) GetHitPointsPerLevel() int32 {
	if x != nil {
		return x.HitPointsPerLevel
	}
	return 0
}

func (x *Class) GetBaseSkillSlots() int32 {
	if x != nil {
		return x.BaseSkillSlots
	}
	return 0
}

func (x *Class) GetTrainedSkills() []string {
	if x != nil {
		return x.TrainedSkills
	}
	return nil
}

func (x *Class) GetSpellcasting() *Spellcasting {
	if x != nil {
		return x.Spellcasting
	}
	return nil
}

type Account struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Username      string                 `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	Role          string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"`
	CreatedAt     int64                  `protobuf:"varint,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Account) Reset() {
	*x = Account{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Account) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Account) ProtoMessage() {}

func (x *Account) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Account.ProtoReflect.Descriptor instead.
func (*Account) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{2}
}

func (x *Account) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Account) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *Account) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Account) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

type Feat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Level         int32                  `protobuf:"varint,3,opt,name=level,proto3" json:"level,omitempty"`
	Category      string                 `protobuf:"bytes,4,opt,name=category,proto3" json:"category,omitempty"`
	Prerequisites string                 `protobuf:"bytes,5,opt,name=prerequisites,proto3" json:"prerequisites,omitempty"`
	Rarity        string                 `protobuf:"bytes,6,opt,name=rarity,proto3" json:"rarity,omitempty"`
	Traits        []string               `protobuf:"bytes,7,rep,name=traits,proto3" json:"traits,omitempty"`
	Description   string                 `protobuf:"bytes,8,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Feat) Reset() {
	*x = Feat{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Feat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Feat) ProtoMessage() {}

func (x *Feat) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Feat.ProtoReflect.Descriptor instead.
func (*Feat) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{3}
}

func (x *Feat) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Feat) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Feat) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

func (x *Feat) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Feat) GetPrerequisites() string {
	if x != nil {
		return x.Prerequisites
	}
	return ""
}

func (x *Feat) GetRarity() string {
	if x != nil {
		return x.Rarity
	}
	return ""
}

func (x *Feat) GetTraits() []string {
	if x != nil {
		return x.Traits
	}
	return nil
}

func (x *Feat) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type SkillDefinition struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Ability       string                 `protobuf:"bytes,2,opt,name=ability,proto3" json:"ability,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SkillDefinition) Reset() {
	*x = SkillDefinition{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SkillDefinition) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SkillDefinition) ProtoMessage() {}

func (x *SkillDefinition) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SkillDefinition.ProtoReflect.Descriptor instead.
func (*SkillDefinition) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{4}
}

func (x *SkillDefinition) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SkillDefinition) GetAbility() string {
	if x != nil {
		return x.Ability
	}
	return ""
}

func (x *SkillDefinition) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type Spell struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Rank          int32                  `protobuf:"varint,3,opt,name=rank,proto3" json:"rank,omitempty"`
	Traditions    []string               `protobuf:"bytes,4,rep,name=traditions,proto3" json:"traditions,omitempty"`
	Ritual        bool                   `protobuf:"varint,5,opt,name=ritual,proto3" json:"ritual,omitempty"`
	Description   string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Spell) Reset() {
	*x = Spell{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Spell) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Spell) ProtoMessage() {}

func (x *Spell) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Spell.ProtoReflect.Descriptor instead.
func (*Spell) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{5}
}

func (x *Spell) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Spell) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Spell) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *Spell) GetTraditions() []string {
	if x != nil {
		return x.Traditions
	}
	return nil
}

func (x *Spell) GetRitual() bool {
	if x != nil {
		return x.Ritual
	}
	return false
}

func (x *Spell) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

type SpecializationOption struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	MinLevel      int32                  `protobuf:"varint,4,opt,name=min_level,json=minLevel,proto3" json:"min_level,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpecializationOption) Reset() {
	*x = SpecializationOption{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpecializationOption) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpecializationOption) ProtoMessage() {}

func (x *SpecializationOption) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpecializationOption.ProtoReflect.Descriptor instead.
func (*SpecializationOption) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{6}
}

func (x *SpecializationOption) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SpecializationOption) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SpecializationOption) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *SpecializationOption) GetMinLevel() int32 {
	if x != nil {
		return x.MinLevel
	}
	return 0
}

type SpecializationType struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Id            string                  `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                  `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Level         int32                   `protobuf:"varint,3,opt,name=level,proto3" json:"level,omitempty"`
	MaxSelections int32                   `protobuf:"varint,4,opt,name=max_selections,json=maxSelections,proto3" json:"max_selections,omitempty"`
	Options       []*SpecializationOption `protobuf:"bytes,5,rep,name=options,proto3" json:"options,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpecializationType) Reset() {
	*x = SpecializationType{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpecializationType) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpecializationType) ProtoMessage() {}

func (x *SpecializationType) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpecializationType.ProtoReflect.Descriptor instead.
func (*SpecializationType) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{7}
}

func (x *SpecializationType) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SpecializationType) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SpecializationType) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

func (x *SpecializationType) GetMaxSelections() int32 {
	if x != nil {
		return x.MaxSelections
	}
	return 0
}

func (x *SpecializationType) GetOptions() []*SpecializationOption {
	if x != nil {
		return x.Options
	}
	return nil
}

type BoostEvent struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Level         int32                  `protobuf:"varint,1,opt,name=level,proto3" json:"level,omitempty"`
	Abilities     []string               `protobuf:"bytes,2,rep,name=abilities,proto3" json:"abilities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoostEvent) Reset() {
	*x = BoostEvent{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoostEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoostEvent) ProtoMessage() {}

func (x *BoostEvent) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoostEvent.ProtoReflect.Descriptor instead.
func (*BoostEvent) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{8}
}

func (x *BoostEvent) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

func (x *BoostEvent) GetAbilities() []string {
	if x != nil {
		return x.Abilities
	}
	return nil
}

type TrainedSkill struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Ability       string                 `protobuf:"bytes,2,opt,name=ability,proto3" json:"ability,omitempty"`
	Rank          string                 `protobuf:"bytes,3,opt,name=rank,proto3" json:"rank,omitempty"`
	Source        string                 `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TrainedSkill) Reset() {
	*x = TrainedSkill{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrainedSkill) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrainedSkill) ProtoMessage() {}

func (x *TrainedSkill) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrainedSkill.ProtoReflect.Descriptor instead.
func (*TrainedSkill) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{9}
}

func (x *TrainedSkill) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *TrainedSkill) GetAbility() string {
	if x != nil {
		return x.Ability
	}
	return ""
}

func (x *TrainedSkill) GetRank() string {
	if x != nil {
		return x.Rank
	}
	return ""
}

func (x *TrainedSkill) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type CharacterFeat struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FeatId        string                 `protobuf:"bytes,1,opt,name=feat_id,json=featId,proto3" json:"feat_id,omitempty"`
	Level         int32                  `protobuf:"varint,2,opt,name=level,proto3" json:"level,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Choices       map[string]string      `protobuf:"bytes,4,rep,name=choices,proto3" json:"choices,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CharacterFeat) Reset() {
	*x = CharacterFeat{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CharacterFeat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CharacterFeat) ProtoMessage() {}

func (x *CharacterFeat) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CharacterFeat.ProtoReflect.Descriptor instead.
func (*CharacterFeat) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{10}
}

func (x *CharacterFeat) GetFeatId() string {
	if x != nil {
		return x.FeatId
	}
	return ""
}

func (x *CharacterFeat) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

func (x *CharacterFeat) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CharacterFeat) GetChoices() map[string]string {
	if x != nil {
		return x.Choices
	}
	return nil
}

type SpecializationSelection struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TypeId        string                 `protobuf:"bytes,1,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	OptionIds     []string               `protobuf:"bytes,2,rep,name=option_ids,json=optionIds,proto3" json:"option_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SpecializationSelection) Reset() {
	*x = SpecializationSelection{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SpecializationSelection) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SpecializationSelection) ProtoMessage() {}

func (x *SpecializationSelection) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SpecializationSelection.ProtoReflect.Descriptor instead.
func (*SpecializationSelection) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{11}
}

func (x *SpecializationSelection) GetTypeId() string {
	if x != nil {
		return x.TypeId
	}
	return ""
}

func (x *SpecializationSelection) GetOptionIds() []string {
	if x != nil {
		return x.OptionIds
	}
	return nil
}

type ExtraSpell struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rank          int32                  `protobuf:"varint,1,opt,name=rank,proto3" json:"rank,omitempty"`
	SpellId       string                 `protobuf:"bytes,2,opt,name=spell_id,json=spellId,proto3" json:"spell_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtraSpell) Reset() {
	*x = ExtraSpell{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtraSpell) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtraSpell) ProtoMessage() {}

func (x *ExtraSpell) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtraSpell.ProtoReflect.Descriptor instead.
func (*ExtraSpell) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{12}
}

func (x *ExtraSpell) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *ExtraSpell) GetSpellId() string {
	if x != nil {
		return x.SpellId
	}
	return ""
}

type Spellbook struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Feature          string                 `protobuf:"bytes,1,opt,name=feature,proto3" json:"feature,omitempty"`
	Spells           []string               `protobuf:"bytes,2,rep,name=spells,proto3" json:"spells,omitempty"`
	DailyPreparation string                 `protobuf:"bytes,3,opt,name=daily_preparation,json=dailyPreparation,proto3" json:"daily_preparation,omitempty"`
	ExtraSpells      []*ExtraSpell          `protobuf:"bytes,4,rep,name=extra_spells,json=extraSpells,proto3" json:"extra_spells,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Spellbook) Reset() {
	*x = Spellbook{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Spellbook) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Spellbook) ProtoMessage() {}

func (x *Spellbook) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Spellbook.ProtoReflect.Descriptor instead.
func (*Spellbook) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{13}
}

func (x *Spellbook) GetFeature() string {
	if x != nil {
		return x.Feature
	}
	return ""
}

func (x *Spellbook) GetSpells() []string {
	if x != nil {
		return x.Spells
	}
	return nil
}

func (x *Spellbook) GetDailyPreparation() string {
	if x != nil {
		return x.DailyPreparation
	}
	return ""
}

func (x *Spellbook) GetExtraSpells() []*ExtraSpell {
	if x != nil {
		return x.ExtraSpells
	}
	return nil
}

type CharacterSheet struct {
	state           protoimpl.MessageState     `protogen:"open.v1"`
	Id              string                     `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AccountId       int64                      `protobuf:"varint,2,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Name            string                     `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	ClassId         string                     `protobuf:"bytes,4,opt,name=class_id,json=classId,proto3" json:"class_id,omitempty"`
	Level           int32                      `protobuf:"varint,5,opt,name=level,proto3" json:"level,omitempty"`
	BaseScores      map[string]int32           `protobuf:"bytes,6,rep,name=base_scores,json=baseScores,proto3" json:"base_scores,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	CurrentScores   map[string]int32           `protobuf:"bytes,7,rep,name=current_scores,json=currentScores,proto3" json:"current_scores,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	GradualBoosts   bool                       `protobuf:"varint,8,opt,name=gradual_boosts,json=gradualBoosts,proto3" json:"gradual_boosts,omitempty"`
	Boosts          []*BoostEvent              `protobuf:"bytes,9,rep,name=boosts,proto3" json:"boosts,omitempty"`
	Skills          []*TrainedSkill            `protobuf:"bytes,10,rep,name=skills,proto3" json:"skills,omitempty"`
	Feats           []*CharacterFeat           `protobuf:"bytes,11,rep,name=feats,proto3" json:"feats,omitempty"`
	Specializations []*SpecializationSelection `protobuf:"bytes,12,rep,name=specializations,proto3" json:"specializations,omitempty"`
	Spellbooks      []*Spellbook               `protobuf:"bytes,13,rep,name=spellbooks,proto3" json:"spellbooks,omitempty"`
	CreatedAt       int64                      `protobuf:"varint,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       int64                      `protobuf:"varint,15,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CharacterSheet) Reset() {
	*x = CharacterSheet{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CharacterSheet) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CharacterSheet) ProtoMessage() {}

func (x *CharacterSheet) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CharacterSheet.ProtoReflect.Descriptor instead.
func (*CharacterSheet) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{14}
}

func (x *CharacterSheet) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CharacterSheet) GetAccountId() int64 {
	if x != nil {
		return x.AccountId
	}
	return 0
}

func (x *CharacterSheet) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CharacterSheet) GetClassId() string {
	if x != nil {
		return x.ClassId
	}
	return ""
}

func (x *CharacterSheet) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

func (x *CharacterSheet) GetBaseScores() map[string]int32 {
	if x != nil {
		return x.BaseScores
	}
	return nil
}

func (x *CharacterSheet) GetCurrentScores() map[string]int32 {
	if x != nil {
		return x.CurrentScores
	}
	return nil
}

func (x *CharacterSheet) GetGradualBoosts() bool {
	if x != nil {
		return x.GradualBoosts
	}
	return false
}

func (x *CharacterSheet) GetBoosts() []*BoostEvent {
	if x != nil {
		return x.Boosts
	}
	return nil
}

func (x *CharacterSheet) GetSkills() []*TrainedSkill {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *CharacterSheet) GetFeats() []*CharacterFeat {
	if x != nil {
		return x.Feats
	}
	return nil
}

func (x *CharacterSheet) GetSpecializations() []*SpecializationSelection {
	if x != nil {
		return x.Specializations
	}
	return nil
}

func (x *CharacterSheet) GetSpellbooks() []*Spellbook {
	if x != nil {
		return x.Spellbooks
	}
	return nil
}

func (x *CharacterSheet) GetCreatedAt() int64 {
	if x != nil {
		return x.CreatedAt
	}
	return 0
}

func (x *CharacterSheet) GetUpdatedAt() int64 {
	if x != nil {
		return x.UpdatedAt
	}
	return 0
}

type CreateAccountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateAccountRequest) Reset() {
	*x = CreateAccountRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateAccountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateAccountRequest) ProtoMessage() {}

func (x *CreateAccountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateAccountRequest.ProtoReflect.Descriptor instead.
func (*CreateAccountRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{15}
}

func (x *CreateAccountRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *CreateAccountRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type AuthenticateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Username      string                 `protobuf:"bytes,1,opt,name=username,proto3" json:"username,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AuthenticateRequest) Reset() {
	*x = AuthenticateRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AuthenticateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuthenticateRequest) ProtoMessage() {}

func (x *AuthenticateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuthenticateRequest.ProtoReflect.Descriptor instead.
func (*AuthenticateRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{16}
}

func (x *AuthenticateRequest) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *AuthenticateRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

type AccountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Account       *Account               `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AccountResponse) Reset() {
	*x = AccountResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AccountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AccountResponse) ProtoMessage() {}

func (x *AccountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AccountResponse.ProtoReflect.Descriptor instead.
func (*AccountResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{17}
}

func (x *AccountResponse) GetAccount() *Account {
	if x != nil {
		return x.Account
	}
	return nil
}

type ListClassesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClassesRequest) Reset() {
	*x = ListClassesRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClassesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClassesRequest) ProtoMessage() {}

func (x *ListClassesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClassesRequest.ProtoReflect.Descriptor instead.
func (*ListClassesRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{18}
}

type ListClassesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Classes       []*Class               `protobuf:"bytes,1,rep,name=classes,proto3" json:"classes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListClassesResponse) Reset() {
	*x = ListClassesResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListClassesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListClassesResponse) ProtoMessage() {}

func (x *ListClassesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListClassesResponse.ProtoReflect.Descriptor instead.
func (*ListClassesResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{19}
}

func (x *ListClassesResponse) GetClasses() []*Class {
	if x != nil {
		return x.Classes
	}
	return nil
}

type ListSkillsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSkillsRequest) Reset() {
	*x = ListSkillsRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSkillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSkillsRequest) ProtoMessage() {}

func (x *ListSkillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSkillsRequest.ProtoReflect.Descriptor instead.
func (*ListSkillsRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{20}
}

type ListSkillsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Skills        []*SkillDefinition     `protobuf:"bytes,1,rep,name=skills,proto3" json:"skills,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSkillsResponse) Reset() {
	*x = ListSkillsResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSkillsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSkillsResponse) ProtoMessage() {}

func (x *ListSkillsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSkillsResponse.ProtoReflect.Descriptor instead.
func (*ListSkillsResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{21}
}

func (x *ListSkillsResponse) GetSkills() []*SkillDefinition {
	if x != nil {
		return x.Skills
	}
	return nil
}

type ListFeatsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// category restricts the listing to one feat category; empty lists all.
	Category string `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	// character_id, when set, narrows the listing to feats the character is
	// eligible to take.
	CharacterId   string `protobuf:"bytes,2,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFeatsRequest) Reset() {
	*x = ListFeatsRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFeatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFeatsRequest) ProtoMessage() {}

func (x *ListFeatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFeatsRequest.ProtoReflect.Descriptor instead.
func (*ListFeatsRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{22}
}

func (x *ListFeatsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ListFeatsRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

type ListFeatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Feats         []*Feat                `protobuf:"bytes,1,rep,name=feats,proto3" json:"feats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFeatsResponse) Reset() {
	*x = ListFeatsResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFeatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFeatsResponse) ProtoMessage() {}

func (x *ListFeatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFeatsResponse.ProtoReflect.Descriptor instead.
func (*ListFeatsResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{23}
}

func (x *ListFeatsResponse) GetFeats() []*Feat {
	if x != nil {
		return x.Feats
	}
	return nil
}

type ListSpellsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSpellsRequest) Reset() {
	*x = ListSpellsRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSpellsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSpellsRequest) ProtoMessage() {}

func (x *ListSpellsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSpellsRequest.ProtoReflect.Descriptor instead.
func (*ListSpellsRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{24}
}

type ListSpellsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Spells        []*Spell               `protobuf:"bytes,1,rep,name=spells,proto3" json:"spells,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSpellsResponse) Reset() {
	*x = ListSpellsResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSpellsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSpellsResponse) ProtoMessage() {}

func (x *ListSpellsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSpellsResponse.ProtoReflect.Descriptor instead.
func (*ListSpellsResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{25}
}

func (x *ListSpellsResponse) GetSpells() []*Spell {
	if x != nil {
		return x.Spells
	}
	return nil
}

type TakeFeatRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	CharacterId string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	FeatId      string                 `protobuf:"bytes,2,opt,name=feat_id,json=featId,proto3" json:"feat_id,omitempty"`
	// level is the character level the feat is acquired at.
	Level         int32 `protobuf:"varint,3,opt,name=level,proto3" json:"level,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TakeFeatRequest) Reset() {
	*x = TakeFeatRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TakeFeatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TakeFeatRequest) ProtoMessage() {}

func (x *TakeFeatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TakeFeatRequest.ProtoReflect.Descriptor instead.
func (*TakeFeatRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{26}
}

func (x *TakeFeatRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *TakeFeatRequest) GetFeatId() string {
	if x != nil {
		return x.FeatId
	}
	return ""
}

func (x *TakeFeatRequest) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

type RemoveFeatRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CharacterId   string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	FeatId        string                 `protobuf:"bytes,2,opt,name=feat_id,json=featId,proto3" json:"feat_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveFeatRequest) Reset() {
	*x = RemoveFeatRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveFeatRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveFeatRequest) ProtoMessage() {}

func (x *RemoveFeatRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveFeatRequest.ProtoReflect.Descriptor instead.
func (*RemoveFeatRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{27}
}

func (x *RemoveFeatRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *RemoveFeatRequest) GetFeatId() string {
	if x != nil {
		return x.FeatId
	}
	return ""
}

type CreateCharacterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     int64                  `protobuf:"varint,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ClassId       string                 `protobuf:"bytes,3,opt,name=class_id,json=classId,proto3" json:"class_id,omitempty"`
	GradualBoosts bool                   `protobuf:"varint,4,opt,name=gradual_boosts,json=gradualBoosts,proto3" json:"gradual_boosts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateCharacterRequest) Reset() {
	*x = CreateCharacterRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateCharacterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateCharacterRequest) ProtoMessage() {}

func (x *CreateCharacterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateCharacterRequest.ProtoReflect.Descriptor instead.
func (*CreateCharacterRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{28}
}

func (x *CreateCharacterRequest) GetAccountId() int64 {
	if x != nil {
		return x.AccountId
	}
	return 0
}

func (x *CreateCharacterRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateCharacterRequest) GetClassId() string {
	if x != nil {
		return x.ClassId
	}
	return ""
}

func (x *CreateCharacterRequest) GetGradualBoosts() bool {
	if x != nil {
		return x.GradualBoosts
	}
	return false
}

type GetCharacterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCharacterRequest) Reset() {
	*x = GetCharacterRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCharacterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCharacterRequest) ProtoMessage() {}

func (x *GetCharacterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCharacterRequest.ProtoReflect.Descriptor instead.
func (*GetCharacterRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{29}
}

func (x *GetCharacterRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ListCharactersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     int64                  `protobuf:"varint,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCharactersRequest) Reset() {
	*x = ListCharactersRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCharactersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCharactersRequest) ProtoMessage() {}

func (x *ListCharactersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCharactersRequest.ProtoReflect.Descriptor instead.
func (*ListCharactersRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{30}
}

func (x *ListCharactersRequest) GetAccountId() int64 {
	if x != nil {
		return x.AccountId
	}
	return 0
}

type ListCharactersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Characters    []*CharacterSheet      `protobuf:"bytes,1,rep,name=characters,proto3" json:"characters,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCharactersResponse) Reset() {
	*x = ListCharactersResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCharactersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCharactersResponse) ProtoMessage() {}

func (x *ListCharactersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCharactersResponse.ProtoReflect.Descriptor instead.
func (*ListCharactersResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{31}
}

func (x *ListCharactersResponse) GetCharacters() []*CharacterSheet {
	if x != nil {
		return x.Characters
	}
	return nil
}

type DeleteCharacterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCharacterRequest) Reset() {
	*x = DeleteCharacterRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCharacterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCharacterRequest) ProtoMessage() {}

func (x *DeleteCharacterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCharacterRequest.ProtoReflect.Descriptor instead.
func (*DeleteCharacterRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{32}
}

func (x *DeleteCharacterRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DeleteCharacterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCharacterResponse) Reset() {
	*x = DeleteCharacterResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCharacterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCharacterResponse) ProtoMessage() {}

func (x *DeleteCharacterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCharacterResponse.ProtoReflect.Descriptor instead.
func (*DeleteCharacterResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{33}
}

type CharacterResponse struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	Character *CharacterSheet        `protobuf:"bytes,1,opt,name=character,proto3" json:"character,omitempty"`
	// changed is false when the request was a no-op, either because the
	// selection was invalid or because it matched the existing state.
	Changed       bool `protobuf:"varint,2,opt,name=changed,proto3" json:"changed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CharacterResponse) Reset() {
	*x = CharacterResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CharacterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CharacterResponse) ProtoMessage() {}

func (x *CharacterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CharacterResponse.ProtoReflect.Descriptor instead.
func (*CharacterResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{34}
}

func (x *CharacterResponse) GetCharacter() *CharacterSheet {
	if x != nil {
		return x.Character
	}
	return nil
}

func (x *CharacterResponse) GetChanged() bool {
	if x != nil {
		return x.Changed
	}
	return false
}

type PreviewBoostsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CharacterId   string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	Level         int32                  `protobuf:"varint,2,opt,name=level,proto3" json:"level,omitempty"`
	Abilities     []string               `protobuf:"bytes,3,rep,name=abilities,proto3" json:"abilities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewBoostsRequest) Reset() {
	*x = PreviewBoostsRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewBoostsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewBoostsRequest) ProtoMessage() {}

func (x *PreviewBoostsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewBoostsRequest.ProtoReflect.Descriptor instead.
func (*PreviewBoostsRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{35}
}

func (x *PreviewBoostsRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *PreviewBoostsRequest) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

func (x *PreviewBoostsRequest) GetAbilities() []string {
	if x != nil {
		return x.Abilities
	}
	return nil
}

type PreviewBoostsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Required      int32                  `protobuf:"varint,1,opt,name=required,proto3" json:"required,omitempty"`
	Eligible      []string               `protobuf:"bytes,2,rep,name=eligible,proto3" json:"eligible,omitempty"`
	PreviewScores map[string]int32       `protobuf:"bytes,3,rep,name=preview_scores,json=previewScores,proto3" json:"preview_scores,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PreviewBoostsResponse) Reset() {
	*x = PreviewBoostsResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PreviewBoostsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PreviewBoostsResponse) ProtoMessage() {}

func (x *PreviewBoostsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PreviewBoostsResponse.ProtoReflect.Descriptor instead.
func (*PreviewBoostsResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{36}
}

func (x *PreviewBoostsResponse) GetRequired() int32 {
	if x != nil {
		return x.Required
	}
	return 0
}

func (x *PreviewBoostsResponse) GetEligible() []string {
	if x != nil {
		return x.Eligible
	}
	return nil
}

func (x *PreviewBoostsResponse) GetPreviewScores() map[string]int32 {
	if x != nil {
		return x.PreviewScores
	}
	return nil
}

type ApplyBoostsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CharacterId   string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	Level         int32                  `protobuf:"varint,2,opt,name=level,proto3" json:"level,omitempty"`
	Abilities     []string               `protobuf:"bytes,3,rep,name=abilities,proto3" json:"abilities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyBoostsRequest) Reset() {
	*x = ApplyBoostsRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyBoostsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyBoostsRequest) ProtoMessage() {}

func (x *ApplyBoostsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyBoostsRequest.ProtoReflect.Descriptor instead.
func (*ApplyBoostsRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{37}
}

func (x *ApplyBoostsRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *ApplyBoostsRequest) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

func (x *ApplyBoostsRequest) GetAbilities() []string {
	if x != nil {
		return x.Abilities
	}
	return nil
}

type RemoveBoostsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CharacterId   string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	Level         int32                  `protobuf:"varint,2,opt,name=level,proto3" json:"level,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveBoostsRequest) Reset() {
	*x = RemoveBoostsRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveBoostsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveBoostsRequest) ProtoMessage() {}

func (x *RemoveBoostsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveBoostsRequest.ProtoReflect.Descriptor instead.
func (*RemoveBoostsRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{38}
}

func (x *RemoveBoostsRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *RemoveBoostsRequest) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

type ListSpecializationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CharacterId   string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSpecializationsRequest) Reset() {
	*x = ListSpecializationsRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSpecializationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSpecializationsRequest) ProtoMessage() {}

func (x *ListSpecializationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSpecializationsRequest.ProtoReflect.Descriptor instead.
func (*ListSpecializationsRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{39}
}

func (x *ListSpecializationsRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

type ListSpecializationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Types         []*SpecializationType  `protobuf:"bytes,1,rep,name=types,proto3" json:"types,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSpecializationsResponse) Reset() {
	*x = ListSpecializationsResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSpecializationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSpecializationsResponse) ProtoMessage() {}

func (x *ListSpecializationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSpecializationsResponse.ProtoReflect.Descriptor instead.
func (*ListSpecializationsResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{40}
}

func (x *ListSpecializationsResponse) GetTypes() []*SpecializationType {
	if x != nil {
		return x.Types
	}
	return nil
}

type ToggleSpecializationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CharacterId   string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	TypeId        string                 `protobuf:"bytes,2,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	OptionId      string                 `protobuf:"bytes,3,opt,name=option_id,json=optionId,proto3" json:"option_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ToggleSpecializationRequest) Reset() {
	*x = ToggleSpecializationRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ToggleSpecializationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ToggleSpecializationRequest) ProtoMessage() {}

func (x *ToggleSpecializationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ToggleSpecializationRequest.ProtoReflect.Descriptor instead.
func (*ToggleSpecializationRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{41}
}

func (x *ToggleSpecializationRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *ToggleSpecializationRequest) GetTypeId() string {
	if x != nil {
		return x.TypeId
	}
	return ""
}

func (x *ToggleSpecializationRequest) GetOptionId() string {
	if x != nil {
		return x.OptionId
	}
	return ""
}

type TrainSkillsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CharacterId   string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	Skills        []string               `protobuf:"bytes,2,rep,name=skills,proto3" json:"skills,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TrainSkillsRequest) Reset() {
	*x = TrainSkillsRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrainSkillsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrainSkillsRequest) ProtoMessage() {}

func (x *TrainSkillsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrainSkillsRequest.ProtoReflect.Descriptor instead.
func (*TrainSkillsRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{42}
}

func (x *TrainSkillsRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *TrainSkillsRequest) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

type ListEligibleSpellsRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	CharacterId string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	// rank restricts bonus-spell listing to one rank; 0 lists spellbook
	// candidates across all castable ranks.
	Rank          int32 `protobuf:"varint,2,opt,name=rank,proto3" json:"rank,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEligibleSpellsRequest) Reset() {
	*x = ListEligibleSpellsRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEligibleSpellsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEligibleSpellsRequest) ProtoMessage() {}

func (x *ListEligibleSpellsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEligibleSpellsRequest.ProtoReflect.Descriptor instead.
func (*ListEligibleSpellsRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{43}
}

func (x *ListEligibleSpellsRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *ListEligibleSpellsRequest) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

type ListEligibleSpellsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Spells        []*Spell               `protobuf:"bytes,1,rep,name=spells,proto3" json:"spells,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEligibleSpellsResponse) Reset() {
	*x = ListEligibleSpellsResponse{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEligibleSpellsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEligibleSpellsResponse) ProtoMessage() {}

func (x *ListEligibleSpellsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEligibleSpellsResponse.ProtoReflect.Descriptor instead.
func (*ListEligibleSpellsResponse) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{44}
}

func (x *ListEligibleSpellsResponse) GetSpells() []*Spell {
	if x != nil {
		return x.Spells
	}
	return nil
}

type AddSpellRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CharacterId   string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	SpellId       string                 `protobuf:"bytes,2,opt,name=spell_id,json=spellId,proto3" json:"spell_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddSpellRequest) Reset() {
	*x = AddSpellRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddSpellRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddSpellRequest) ProtoMessage() {}

func (x *AddSpellRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddSpellRequest.ProtoReflect.Descriptor instead.
func (*AddSpellRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{45}
}

func (x *AddSpellRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *AddSpellRequest) GetSpellId() string {
	if x != nil {
		return x.SpellId
	}
	return ""
}

type RemoveSpellRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CharacterId   string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	SpellId       string                 `protobuf:"bytes,2,opt,name=spell_id,json=spellId,proto3" json:"spell_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RemoveSpellRequest) Reset() {
	*x = RemoveSpellRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RemoveSpellRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RemoveSpellRequest) ProtoMessage() {}

func (x *RemoveSpellRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RemoveSpellRequest.ProtoReflect.Descriptor instead.
func (*RemoveSpellRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{46}
}

func (x *RemoveSpellRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *RemoveSpellRequest) GetSpellId() string {
	if x != nil {
		return x.SpellId
	}
	return ""
}

type PrepareSpellRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	CharacterId string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	// spell_id clears the daily preparation when empty.
	SpellId       string `protobuf:"bytes,2,opt,name=spell_id,json=spellId,proto3" json:"spell_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PrepareSpellRequest) Reset() {
	*x = PrepareSpellRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PrepareSpellRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PrepareSpellRequest) ProtoMessage() {}

func (x *PrepareSpellRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PrepareSpellRequest.ProtoReflect.Descriptor instead.
func (*PrepareSpellRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{47}
}

func (x *PrepareSpellRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *PrepareSpellRequest) GetSpellId() string {
	if x != nil {
		return x.SpellId
	}
	return ""
}

type SetExtraSpellRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	CharacterId string                 `protobuf:"bytes,1,opt,name=character_id,json=characterId,proto3" json:"character_id,omitempty"`
	Rank        int32                  `protobuf:"varint,2,opt,name=rank,proto3" json:"rank,omitempty"`
	// spell_id clears the slot when empty.
	SpellId       string `protobuf:"bytes,3,opt,name=spell_id,json=spellId,proto3" json:"spell_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetExtraSpellRequest) Reset() {
	*x = SetExtraSpellRequest{}
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetExtraSpellRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetExtraSpellRequest) ProtoMessage() {}

func (x *SetExtraSpellRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_sheetserver_sheetv1_sheet_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetExtraSpellRequest.ProtoReflect.Descriptor instead.
func (*SetExtraSpellRequest) Descriptor() ([]byte, []int) {
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP(), []int{48}
}

func (x *SetExtraSpellRequest) GetCharacterId() string {
	if x != nil {
		return x.CharacterId
	}
	return ""
}

func (x *SetExtraSpellRequest) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *SetExtraSpellRequest) GetSpellId() string {
	if x != nil {
		return x.SpellId
	}
	return ""
}

var File_internal_sheetserver_sheetv1_sheet_proto protoreflect.FileDescriptor

const file_internal_sheetserver_sheetv1_sheet_proto_rawDesc = "" +
	"\n" +
	"(internal/sheetserver/sheetv1/sheet.proto\x12\x12charforge.sheet.v1\"Z\n" +
	"\fSpellcasting\x12\x18\n" +
	"\afeature\x18\x01 \x01(\tR\afeature\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1c\n" +
	"\ttradition\x18\x03 \x01(\tR\ttradition\"\xb6\x02\n" +
	"\x05Class\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1f\n" +
	"\vkey_ability\x18\x04 \x01(\tR\n" +
	"keyAbility\x12/\n" +
	"\x14hit_points_per_level\x18\x05 \x01(\x05R\x11hitPointsPerLevel\x12(\n" +
	"\x10base_skill_slots\x18\x06 \x01(\x05R\x0ebaseSkillSlots\x12%\n" +
	"\x0etrained_skills\x18\a \x03(\tR\rtrainedSkills\x12D\n" +
	"\fspellcasting\x18\b \x01(\v2 .charforge.sheet.v1.SpellcastingR\fspellcasting\"h\n" +
	"\aAccount\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x1a\n" +
	"\busername\x18\x02 \x01(\tR\busername\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\x03R\tcreatedAt\"\xd4\x01\n" +
	"\x04Feat\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05level\x18\x03 \x01(\x05R\x05level\x12\x1a\n" +
	"\bcategory\x18\x04 \x01(\tR\bcategory\x12$\n" +
	"\rprerequisites\x18\x05 \x01(\tR\rprerequisites\x12\x16\n" +
	"\x06rarity\x18\x06 \x01(\tR\x06rarity\x12\x16\n" +
	"\x06traits\x18\a \x03(\tR\x06traits\x12 \n" +
	"\vdescription\x18\b \x01(\tR\vdescription\"a\n" +
	"\x0fSkillDefinition\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\aability\x18\x02 \x01(\tR\aability\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\"\x99\x01\n" +
	"\x05Spell\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x12\n" +
	"\x04rank\x18\x03 \x01(\x05R\x04rank\x12\x1e\n" +
	"\n" +
	"traditions\x18\x04 \x03(\tR\n" +
	"traditions\x12\x16\n" +
	"\x06ritual\x18\x05 \x01(\bR\x06ritual\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\"y\n" +
	"\x14SpecializationOption\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x1b\n" +
	"\tmin_level\x18\x04 \x01(\x05R\bminLevel\"\xb9\x01\n" +
	"\x12SpecializationType\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05level\x18\x03 \x01(\x05R\x05level\x12%\n" +
	"\x0emax_selections\x18\x04 \x01(\x05R\rmaxSelections\x12B\n" +
	"\aoptions\x18\x05 \x03(\v2(.charforge.sheet.v1.SpecializationOptionR\aoptions\"@\n" +
	"\n" +
	"BoostEvent\x12\x14\n" +
	"\x05level\x18\x01 \x01(\x05R\x05level\x12\x1c\n" +
	"\tabilities\x18\x02 \x03(\tR\tabilities\"h\n" +
	"\fTrainedSkill\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x18\n" +
	"\aability\x18\x02 \x01(\tR\aability\x12\x12\n" +
	"\x04rank\x18\x03 \x01(\tR\x04rank\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\"\xe0\x01\n" +
	"\rCharacterFeat\x12\x17\n" +
	"\afeat_id\x18\x01 \x01(\tR\x06featId\x12\x14\n" +
	"\x05level\x18\x02 \x01(\x05R\x05level\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12H\n" +
	"\achoices\x18\x04 \x03(\v2..charforge.sheet.v1.CharacterFeat.ChoicesEntryR\achoices\x1a:\n" +
	"\fChoicesEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"Q\n" +
	"\x17SpecializationSelection\x12\x17\n" +
	"\atype_id\x18\x01 \x01(\tR\x06typeId\x12\x1d\n" +
	"\n" +
	"option_ids\x18\x02 \x03(\tR\toptionIds\";\n" +
	"\n" +
	"ExtraSpell\x12\x12\n" +
	"\x04rank\x18\x01 \x01(\x05R\x04rank\x12\x19\n" +
	"\bspell_id\x18\x02 \x01(\tR\aspellId\"\xad\x01\n" +
	"\tSpellbook\x12\x18\n" +
	"\afeature\x18\x01 \x01(\tR\afeature\x12\x16\n" +
	"\x06spells\x18\x02 \x03(\tR\x06spells\x12+\n" +
	"\x11daily_preparation\x18\x03 \x01(\tR\x10dailyPreparation\x12A\n" +
	"\fextra_spells\x18\x04 \x03(\v2\x1e.charforge.sheet.v1.ExtraSpellR\vextraSpells\"\xde\x06\n" +
	"\x0eCharacterSheet\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"account_id\x18\x02 \x01(\x03R\taccountId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x19\n" +
	"\bclass_id\x18\x04 \x01(\tR\aclassId\x12\x14\n" +
	"\x05level\x18\x05 \x01(\x05R\x05level\x12S\n" +
	"\vbase_scores\x18\x06 \x03(\v22.charforge.sheet.v1.CharacterSheet.BaseScoresEntryR\n" +
	"baseScores\x12\\\n" +
	"\x0ecurrent_scores\x18\a \x03(\v25.charforge.sheet.v1.CharacterSheet.CurrentScoresEntryR\rcurrentScores\x12%\n" +
	"\x0egradual_boosts\x18\b \x01(\bR\rgradualBoosts\x126\n" +
	"\x06boosts\x18\t \x03(\v2\x1e.charforge.sheet.v1.BoostEventR\x06boosts\x128\n" +
	"\x06skills\x18\n" +
	" \x03(\v2 .charforge.sheet.v1.TrainedSkillR\x06skills\x127\n" +
	"\x05feats\x18\v \x03(\v2!.charforge.sheet.v1.CharacterFeatR\x05feats\x12U\n" +
	"\x0fspecializations\x18\f \x03(\v2+.charforge.sheet.v1.SpecializationSelectionR\x0fspecializations\x12=\n" +
	"\n" +
	"spellbooks\x18\r \x03(\v2\x1d.charforge.sheet.v1.SpellbookR\n" +
	"spellbooks\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\x03R\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x0f \x01(\x03R\tupdatedAt\x1a=\n" +
	"\x0fBaseScoresEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\x1a@\n" +
	"\x12CurrentScoresEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"N\n" +
	"\x14CreateAccountRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\"M\n" +
	"\x13AuthenticateRequest\x12\x1a\n" +
	"\busername\x18\x01 \x01(\tR\busername\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\"H\n" +
	"\x0fAccountResponse\x125\n" +
	"\aaccount\x18\x01 \x01(\v2\x1b.charforge.sheet.v1.AccountR\aaccount\"\x14\n" +
	"\x12ListClassesRequest\"J\n" +
	"\x13ListClassesResponse\x123\n" +
	"\aclasses\x18\x01 \x03(\v2\x19.charforge.sheet.v1.ClassR\aclasses\"\x13\n" +
	"\x11ListSkillsRequest\"Q\n" +
	"\x12ListSkillsResponse\x12;\n" +
	"\x06skills\x18\x01 \x03(\v2#.charforge.sheet.v1.SkillDefinitionR\x06skills\"Q\n" +
	"\x10ListFeatsRequest\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12!\n" +
	"\fcharacter_id\x18\x02 \x01(\tR\vcharacterId\"C\n" +
	"\x11ListFeatsResponse\x12.\n" +
	"\x05feats\x18\x01 \x03(\v2\x18.charforge.sheet.v1.FeatR\x05feats\"\x13\n" +
	"\x11ListSpellsRequest\"G\n" +
	"\x12ListSpellsResponse\x121\n" +
	"\x06spells\x18\x01 \x03(\v2\x19.charforge.sheet.v1.SpellR\x06spells\"c\n" +
	"\x0fTakeFeatRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x17\n" +
	"\afeat_id\x18\x02 \x01(\tR\x06featId\x12\x14\n" +
	"\x05level\x18\x03 \x01(\x05R\x05level\"O\n" +
	"\x11RemoveFeatRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x17\n" +
	"\afeat_id\x18\x02 \x01(\tR\x06featId\"\x8d\x01\n" +
	"\x16CreateCharacterRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\x03R\taccountId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x19\n" +
	"\bclass_id\x18\x03 \x01(\tR\aclassId\x12%\n" +
	"\x0egradual_boosts\x18\x04 \x01(\bR\rgradualBoosts\"%\n" +
	"\x13GetCharacterRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"6\n" +
	"\x15ListCharactersRequest\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\x03R\taccountId\"\\\n" +
	"\x16ListCharactersResponse\x12B\n" +
	"\n" +
	"characters\x18\x01 \x03(\v2\".charforge.sheet.v1.CharacterSheetR\n" +
	"characters\"(\n" +
	"\x16DeleteCharacterRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x19\n" +
	"\x17DeleteCharacterResponse\"o\n" +
	"\x11CharacterResponse\x12@\n" +
	"\tcharacter\x18\x01 \x01(\v2\".charforge.sheet.v1.CharacterSheetR\tcharacter\x12\x18\n" +
	"\achanged\x18\x02 \x01(\bR\achanged\"m\n" +
	"\x14PreviewBoostsRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x14\n" +
	"\x05level\x18\x02 \x01(\x05R\x05level\x12\x1c\n" +
	"\tabilities\x18\x03 \x03(\tR\tabilities\"\xf6\x01\n" +
	"\x15PreviewBoostsResponse\x12\x1a\n" +
	"\brequired\x18\x01 \x01(\x05R\brequired\x12\x1a\n" +
	"\beligible\x18\x02 \x03(\tR\beligible\x12c\n" +
	"\x0epreview_scores\x18\x03 \x03(\v2<.charforge.sheet.v1.PreviewBoostsResponse.PreviewScoresEntryR\rpreviewScores\x1a@\n" +
	"\x12PreviewScoresEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"k\n" +
	"\x12ApplyBoostsRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x14\n" +
	"\x05level\x18\x02 \x01(\x05R\x05level\x12\x1c\n" +
	"\tabilities\x18\x03 \x03(\tR\tabilities\"N\n" +
	"\x13RemoveBoostsRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x14\n" +
	"\x05level\x18\x02 \x01(\x05R\x05level\"?\n" +
	"\x1aListSpecializationsRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\"[\n" +
	"\x1bListSpecializationsResponse\x12<\n" +
	"\x05types\x18\x01 \x03(\v2&.charforge.sheet.v1.SpecializationTypeR\x05types\"v\n" +
	"\x1bToggleSpecializationRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x17\n" +
	"\atype_id\x18\x02 \x01(\tR\x06typeId\x12\x1b\n" +
	"\toption_id\x18\x03 \x01(\tR\boptionId\"O\n" +
	"\x12TrainSkillsRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x16\n" +
	"\x06skills\x18\x02 \x03(\tR\x06skills\"R\n" +
	"\x19ListEligibleSpellsRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x12\n" +
	"\x04rank\x18\x02 \x01(\x05R\x04rank\"O\n" +
	"\x1aListEligibleSpellsResponse\x121\n" +
	"\x06spells\x18\x01 \x03(\v2\x19.charforge.sheet.v1.SpellR\x06spells\"O\n" +
	"\x0fAddSpellRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x19\n" +
	"\bspell_id\x18\x02 \x01(\tR\aspellId\"R\n" +
	"\x12RemoveSpellRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x19\n" +
	"\bspell_id\x18\x02 \x01(\tR\aspellId\"S\n" +
	"\x13PrepareSpellRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x19\n" +
	"\bspell_id\x18\x02 \x01(\tR\aspellId\"h\n" +
	"\x14SetExtraSpellRequest\x12!\n" +
	"\fcharacter_id\x18\x01 \x01(\tR\vcharacterId\x12\x12\n" +
	"\x04rank\x18\x02 \x01(\x05R\x04rank\x12\x19\n" +
	"\bspell_id\x18\x03 \x01(\tR\aspellId2\xe6\x11\n" +
	"\fSheetService\x12^\n" +
	"\rCreateAccount\x12(.charforge.sheet.v1.CreateAccountRequest\x1a#.charforge.sheet.v1.AccountResponse\x12\\\n" +
	"\fAuthenticate\x12'.charforge.sheet.v1.AuthenticateRequest\x1a#.charforge.sheet.v1.AccountResponse\x12^\n" +
	"\vListClasses\x12&.charforge.sheet.v1.ListClassesRequest\x1a'.charforge.sheet.v1.ListClassesResponse\x12[\n" +
	"\n" +
	"ListSkills\x12%.charforge.sheet.v1.ListSkillsRequest\x1a&.charforge.sheet.v1.ListSkillsResponse\x12X\n" +
	"\tListFeats\x12$.charforge.sheet.v1.ListFeatsRequest\x1a%.charforge.sheet.v1.ListFeatsResponse\x12[\n" +
	"\n" +
	"ListSpells\x12%.charforge.sheet.v1.ListSpellsRequest\x1a&.charforge.sheet.v1.ListSpellsResponse\x12d\n" +
	"\x0fCreateCharacter\x12*.charforge.sheet.v1.CreateCharacterRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12^\n" +
	"\fGetCharacter\x12'.charforge.sheet.v1.GetCharacterRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12g\n" +
	"\x0eListCharacters\x12).charforge.sheet.v1.ListCharactersRequest\x1a*.charforge.sheet.v1.ListCharactersResponse\x12j\n" +
	"\x0fDeleteCharacter\x12*.charforge.sheet.v1.DeleteCharacterRequest\x1a+.charforge.sheet.v1.DeleteCharacterResponse\x12d\n" +
	"\rPreviewBoosts\x12(.charforge.sheet.v1.PreviewBoostsRequest\x1a).charforge.sheet.v1.PreviewBoostsResponse\x12\\\n" +
	"\vApplyBoosts\x12&.charforge.sheet.v1.ApplyBoostsRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12^\n" +
	"\fRemoveBoosts\x12'.charforge.sheet.v1.RemoveBoostsRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12v\n" +
	"\x13ListSpecializations\x12..charforge.sheet.v1.ListSpecializationsRequest\x1a/.charforge.sheet.v1.ListSpecializationsResponse\x12n\n" +
	"\x14ToggleSpecialization\x12/.charforge.sheet.v1.ToggleSpecializationRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12\\\n" +
	"\vTrainSkills\x12&.charforge.sheet.v1.TrainSkillsRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12V\n" +
	"\bTakeFeat\x12#.charforge.sheet.v1.TakeFeatRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12Z\n" +
	"\n" +
	"RemoveFeat\x12%.charforge.sheet.v1.RemoveFeatRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12s\n" +
	"\x12ListEligibleSpells\x12-.charforge.sheet.v1.ListEligibleSpellsRequest\x1a..charforge.sheet.v1.ListEligibleSpellsResponse\x12V\n" +
	"\bAddSpell\x12#.charforge.sheet.v1.AddSpellRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12\\\n" +
	"\vRemoveSpell\x12&.charforge.sheet.v1.RemoveSpellRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12^\n" +
	"\fPrepareSpell\x12'.charforge.sheet.v1.PrepareSpellRequest\x1a%.charforge.sheet.v1.CharacterResponse\x12`\n" +
	"\rSetExtraSpell\x12(.charforge.sheet.v1.SetExtraSpellRequest\x1a%.charforge.sheet.v1.CharacterResponseBFZDgithub.com/soren-hale/charforge/internal/sheetserver/sheetv1;sheetv1b\x06proto3"

var (
	file_internal_sheetserver_sheetv1_sheet_proto_rawDescOnce sync.Once
	file_internal_sheetserver_sheetv1_sheet_proto_rawDescData []byte
)

func file_internal_sheetserver_sheetv1_sheet_proto_rawDescGZIP() []byte {
	file_internal_sheetserver_sheetv1_sheet_proto_rawDescOnce.Do(func() {
		file_internal_sheetserver_sheetv1_sheet_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_internal_sheetserver_sheetv1_sheet_proto_rawDesc), len(file_internal_sheetserver_sheetv1_sheet_proto_rawDesc)))
	})
	return file_internal_sheetserver_sheetv1_sheet_proto_rawDescData
}

var file_internal_sheetserver_sheetv1_sheet_proto_msgTypes = make([]protoimpl.MessageInfo, 53)
var file_internal_sheetserver_sheetv1_sheet_proto_goTypes = []any{
	(*Spellcasting)(nil),                // 0: charforge.sheet.v1.Spellcasting
	(*Class)(nil),                       // 1: charforge.sheet.v1.Class
	(*Account)(nil),                     // 2: charforge.sheet.v1.Account
	(*Feat)(nil),                        // 3: charforge.sheet.v1.Feat
	(*SkillDefinition)(nil),             // 4: charforge.sheet.v1.SkillDefinition
	(*Spell)(nil),                       // 5: charforge.sheet.v1.Spell
	(*SpecializationOption)(nil),        // 6: charforge.sheet.v1.SpecializationOption
	(*SpecializationType)(nil),          // 7: charforge.sheet.v1.SpecializationType
	(*BoostEvent)(nil),                  // 8: charforge.sheet.v1.BoostEvent
	(*TrainedSkill)(nil),                // 9: charforge.sheet.v1.TrainedSkill
	(*CharacterFeat)(nil),               // 10: charforge.sheet.v1.CharacterFeat
	(*SpecializationSelection)(nil),     // 11: charforge.sheet.v1.SpecializationSelection
	(*ExtraSpell)(nil),                  // 12: charforge.sheet.v1.ExtraSpell
	(*Spellbook)(nil),                   // 13: charforge.sheet.v1.Spellbook
	(*CharacterSheet)(nil),              // 14: charforge.sheet.v1.CharacterSheet
	(*CreateAccountRequest)(nil),        // 15: charforge.sheet.v1.CreateAccountRequest
	(*AuthenticateRequest)(nil),         // 16: charforge.sheet.v1.AuthenticateRequest
	(*AccountResponse)(nil),             // 17: charforge.sheet.v1.AccountResponse
	(*ListClassesRequest)(nil),          // 18: charforge.sheet.v1.ListClassesRequest
	(*ListClassesResponse)(nil),         // 19: charforge.sheet.v1.ListClassesResponse
	(*ListSkillsRequest)(nil),           // 20: charforge.sheet.v1.ListSkillsRequest
	(*ListSkillsResponse)(nil),          // 21: charforge.sheet.v1.ListSkillsResponse
	(*ListFeatsRequest)(nil),            // 22: charforge.sheet.v1.ListFeatsRequest
	(*ListFeatsResponse)(nil),           // 23: charforge.sheet.v1.ListFeatsResponse
	(*ListSpellsRequest)(nil),           // 24: charforge.sheet.v1.ListSpellsRequest
	(*ListSpellsResponse)(nil),          // 25: charforge.sheet.v1.ListSpellsResponse
	(*TakeFeatRequest)(nil),             // 26: charforge.sheet.v1.TakeFeatRequest
	(*RemoveFeatRequest)(nil),           // 27: charforge.sheet.v1.RemoveFeatRequest
	(*CreateCharacterRequest)(nil),      // 28: charforge.sheet.v1.CreateCharacterRequest
	(*GetCharacterRequest)(nil),         // 29: charforge.sheet.v1.GetCharacterRequest
	(*ListCharactersRequest)(nil),       // 30: charforge.sheet.v1.ListCharactersRequest
	(*ListCharactersResponse)(nil),      // 31: charforge.sheet.v1.ListCharactersResponse
	(*DeleteCharacterRequest)(nil),      // 32: charforge.sheet.v1.DeleteCharacterRequest
	(*DeleteCharacterResponse)(nil),     // 33: charforge.sheet.v1.DeleteCharacterResponse
	(*CharacterResponse)(nil),           // 34: charforge.sheet.v1.CharacterResponse
	(*PreviewBoostsRequest)(nil),        // 35: charforge.sheet.v1.PreviewBoostsRequest
	(*PreviewBoostsResponse)(nil),       // 36: charforge.sheet.v1.PreviewBoostsResponse
	(*ApplyBoostsRequest)(nil),          // 37: charforge.sheet.v1.ApplyBoostsRequest
	(*RemoveBoostsRequest)(nil),         // 38: charforge.sheet.v1.RemoveBoostsRequest
	(*ListSpecializationsRequest)(nil),  // 39: charforge.sheet.v1.ListSpecializationsRequest
	(*ListSpecializationsResponse)(nil), // 40: charforge.sheet.v1.ListSpecializationsResponse
	(*ToggleSpecializationRequest)(nil), // 41: charforge.sheet.v1.ToggleSpecializationRequest
	(*TrainSkillsRequest)(nil),          // 42: charforge.sheet.v1.TrainSkillsRequest
	(*ListEligibleSpellsRequest)(nil),   // 43: charforge.sheet.v1.ListEligibleSpellsRequest
	(*ListEligibleSpellsResponse)(nil),  // 44: charforge.sheet.v1.ListEligibleSpellsResponse
	(*AddSpellRequest)(nil),             // 45: charforge.sheet.v1.AddSpellRequest
	(*RemoveSpellRequest)(nil),          // 46: charforge.sheet.v1.RemoveSpellRequest
	(*PrepareSpellRequest)(nil),         // 47: charforge.sheet.v1.PrepareSpellRequest
	(*SetExtraSpellRequest)(nil),        // 48: charforge.sheet.v1.SetExtraSpellRequest
	nil,                                 // 49: charforge.sheet.v1.CharacterFeat.ChoicesEntry
	nil,                                 // 50: charforge.sheet.v1.CharacterSheet.BaseScoresEntry
	nil,                                 // 51: charforge.sheet.v1.CharacterSheet.CurrentScoresEntry
	nil,                                 // 52: charforge.sheet.v1.PreviewBoostsResponse.PreviewScoresEntry
}
var file_internal_sheetserver_sheetv1_sheet_proto_depIdxs = []int32{
	0,  // 0: charforge.sheet.v1.Class.spellcasting:type_name -> charforge.sheet.v1.Spellcasting
	6,  // 1: charforge.sheet.v1.SpecializationType.options:type_name -> charforge.sheet.v1.SpecializationOption
	49, // 2: charforge.sheet.v1.CharacterFeat.choices:type_name -> charforge.sheet.v1.CharacterFeat.ChoicesEntry
	12, // 3: charforge.sheet.v1.Spellbook.extra_spells:type_name -> charforge.sheet.v1.ExtraSpell
	50, // 4: charforge.sheet.v1.CharacterSheet.base_scores:type_name -> charforge.sheet.v1.CharacterSheet.BaseScoresEntry
	51, // 5: charforge.sheet.v1.CharacterSheet.current_scores:type_name -> charforge.sheet.v1.CharacterSheet.CurrentScoresEntry
	8,  // 6: charforge.sheet.v1.CharacterSheet.boosts:type_name -> charforge.sheet.v1.BoostEvent
	9,  // 7: charforge.sheet.v1.CharacterSheet.skills:type_name -> charforge.sheet.v1.TrainedSkill
	10, // 8: charforge.sheet.v1.CharacterSheet.feats:type_name -> charforge.sheet.v1.CharacterFeat
	11, // 9: charforge.sheet.v1.CharacterSheet.specializations:type_name -> charforge.sheet.v1.SpecializationSelection
	13, // 10: charforge.sheet.v1.CharacterSheet.spellbooks:type_name -> charforge.sheet.v1.Spellbook
	2,  // 11: charforge.sheet.v1.AccountResponse.account:type_name -> charforge.sheet.v1.Account
	1,  // 12: charforge.sheet.v1.ListClassesResponse.classes:type_name -> charforge.sheet.v1.Class
	4,  // 13: charforge.sheet.v1.ListSkillsResponse.skills:type_name -> charforge.sheet.v1.SkillDefinition
	3,  // 14: charforge.sheet.v1.ListFeatsResponse.feats:type_name -> charforge.sheet.v1.Feat
	5,  // 15: charforge.sheet.v1.ListSpellsResponse.spells:type_name -> charforge.sheet.v1.Spell
	14, // 16: charforge.sheet.v1.ListCharactersResponse.characters:type_name -> charforge.sheet.v1.CharacterSheet
	14, // 17: charforge.sheet.v1.CharacterResponse.character:type_name -> charforge.sheet.v1.CharacterSheet
	52, // 18: charforge.sheet.v1.PreviewBoostsResponse.preview_scores:type_name -> charforge.sheet.v1.PreviewBoostsResponse.PreviewScoresEntry
	7,  // 19: charforge.sheet.v1.ListSpecializationsResponse.types:type_name -> charforge.sheet.v1.SpecializationType
	5,  // 20: charforge.sheet.v1.ListEligibleSpellsResponse.spells:type_name -> charforge.sheet.v1.Spell
	15, // 21: charforge.sheet.v1.SheetService.CreateAccount:input_type -> charforge.sheet.v1.CreateAccountRequest
	16, // 22: charforge.sheet.v1.SheetService.Authenticate:input_type -> charforge.sheet.v1.AuthenticateRequest
	18, // 23: charforge.sheet.v1.SheetService.ListClasses:input_type -> charforge.sheet.v1.ListClassesRequest
	20, // 24: charforge.sheet.v1.SheetService.ListSkills:input_type -> charforge.sheet.v1.ListSkillsRequest
	22, // 25: charforge.sheet.v1.SheetService.ListFeats:input_type -> charforge.sheet.v1.ListFeatsRequest
	24, // 26: charforge.sheet.v1.SheetService.ListSpells:input_type -> charforge.sheet.v1.ListSpellsRequest
	28, // 27: charforge.sheet.v1.SheetService.CreateCharacter:input_type -> charforge.sheet.v1.CreateCharacterRequest
	29, // 28: charforge.sheet.v1.SheetService.GetCharacter:input_type -> charforge.sheet.v1.GetCharacterRequest
	30, // 29: charforge.sheet.v1.SheetService.ListCharacters:input_type -> charforge.sheet.v1.ListCharactersRequest
	32, // 30: charforge.sheet.v1.SheetService.DeleteCharacter:input_type -> charforge.sheet.v1.DeleteCharacterRequest
	35, // 31: charforge.sheet.v1.SheetService.PreviewBoosts:input_type -> charforge.sheet.v1.PreviewBoostsRequest
	37, // 32: charforge.sheet.v1.SheetService.ApplyBoosts:input_type -> charforge.sheet.v1.ApplyBoostsRequest
	38, // 33: charforge.sheet.v1.SheetService.RemoveBoosts:input_type -> charforge.sheet.v1.RemoveBoostsRequest
	39, // 34: charforge.sheet.v1.SheetService.ListSpecializations:input_type -> charforge.sheet.v1.ListSpecializationsRequest
	41, // 35: charforge.sheet.v1.SheetService.ToggleSpecialization:input_type -> charforge.sheet.v1.ToggleSpecializationRequest
	42, // 36: charforge.sheet.v1.SheetService.TrainSkills:input_type -> charforge.sheet.v1.TrainSkillsRequest
	26, // 37: charforge.sheet.v1.SheetService.TakeFeat:input_type -> charforge.sheet.v1.TakeFeatRequest
	27, // 38: charforge.sheet.v1.SheetService.RemoveFeat:input_type -> charforge.sheet.v1.RemoveFeatRequest
	43, // 39: charforge.sheet.v1.SheetService.ListEligibleSpells:input_type -> charforge.sheet.v1.ListEligibleSpellsRequest
	45, // 40: charforge.sheet.v1.SheetService.AddSpell:input_type -> charforge.sheet.v1.AddSpellRequest
	46, // 41: charforge.sheet.v1.SheetService.RemoveSpell:input_type -> charforge.sheet.v1.RemoveSpellRequest
	47, // 42: charforge.sheet.v1.SheetService.PrepareSpell:input_type -> charforge.sheet.v1.PrepareSpellRequest
	48, // 43: charforge.sheet.v1.SheetService.SetExtraSpell:input_type -> charforge.sheet.v1.SetExtraSpellRequest
	17, // 44: charforge.sheet.v1.SheetService.CreateAccount:output_type -> charforge.sheet.v1.AccountResponse
	17, // 45: charforge.sheet.v1.SheetService.Authenticate:output_type -> charforge.sheet.v1.AccountResponse
	19, // 46: charforge.sheet.v1.SheetService.ListClasses:output_type -> charforge.sheet.v1.ListClassesResponse
	21, // 47: charforge.sheet.v1.SheetService.ListSkills:output_type -> charforge.sheet.v1.ListSkillsResponse
	23, // 48: charforge.sheet.v1.SheetService.ListFeats:output_type -> charforge.sheet.v1.ListFeatsResponse
	25, // 49: charforge.sheet.v1.SheetService.ListSpells:output_type -> charforge.sheet.v1.ListSpellsResponse
	34, // 50: charforge.sheet.v1.SheetService.CreateCharacter:output_type -> charforge.sheet.v1.CharacterResponse
	34, // 51: charforge.sheet.v1.SheetService.GetCharacter:output_type -> charforge.sheet.v1.CharacterResponse
	31, // 52: charforge.sheet.v1.SheetService.ListCharacters:output_type -> charforge.sheet.v1.ListCharactersResponse
	33, // 53: charforge.sheet.v1.SheetService.DeleteCharacter:output_type -> charforge.sheet.v1.DeleteCharacterResponse
	36, // 54: charforge.sheet.v1.SheetService.PreviewBoosts:output_type -> charforge.sheet.v1.PreviewBoostsResponse
	34, // 55: charforge.sheet.v1.SheetService.ApplyBoosts:output_type -> charforge.sheet.v1.CharacterResponse
	34, // 56: charforge.sheet.v1.SheetService.RemoveBoosts:output_type -> charforge.sheet.v1.CharacterResponse
	40, // 57: charforge.sheet.v1.SheetService.ListSpecializations:output_type -> charforge.sheet.v1.ListSpecializationsResponse
	34, // 58: charforge.sheet.v1.SheetService.ToggleSpecialization:output_type -> charforge.sheet.v1.CharacterResponse
	34, // 59: charforge.sheet.v1.SheetService.TrainSkills:output_type -> charforge.sheet.v1.CharacterResponse
	34, // 60: charforge.sheet.v1.SheetService.TakeFeat:output_type -> charforge.sheet.v1.CharacterResponse
	34, // 61: charforge.sheet.v1.SheetService.RemoveFeat:output_type -> charforge.sheet.v1.CharacterResponse
	44, // 62: charforge.sheet.v1.SheetService.ListEligibleSpells:output_type -> charforge.sheet.v1.ListEligibleSpellsResponse
	34, // 63: charforge.sheet.v1.SheetService.AddSpell:output_type -> charforge.sheet.v1.CharacterResponse
	34, // 64: charforge.sheet.v1.SheetService.RemoveSpell:output_type -> charforge.sheet.v1.CharacterResponse
	34, // 65: charforge.sheet.v1.SheetService.PrepareSpell:output_type -> charforge.sheet.v1.CharacterResponse
	34, // 66: charforge.sheet.v1.SheetService.SetExtraSpell:output_type -> charforge.sheet.v1.CharacterResponse
	44, // [44:67] is the sub-list for method output_type
	21, // [21:44] is the sub-list for method input_type
	21, // [21:21] is the sub-list for extension type_name
	21, // [21:21] is the sub-list for extension extendee
	0,  // [0:21] is the sub-list for field type_name
}

func init() { file_internal_sheetserver_sheetv1_sheet_proto_init() }
func file_internal_sheetserver_sheetv1_sheet_proto_init() {
	if File_internal_sheetserver_sheetv1_sheet_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_internal_sheetserver_sheetv1_sheet_proto_rawDesc), len(file_internal_sheetserver_sheetv1_sheet_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   53,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_internal_sheetserver_sheetv1_sheet_proto_goTypes,
		DependencyIndexes: file_internal_sheetserver_sheetv1_sheet_proto_depIdxs,
		MessageInfos:      file_internal_sheetserver_sheetv1_sheet_proto_msgTypes,
	}.Build()
	File_internal_sheetserver_sheetv1_sheet_proto = out.File
	file_internal_sheetserver_sheetv1_sheet_proto_goTypes = nil
	file_internal_sheetserver_sheetv1_sheet_proto_depIdxs = nil
}
