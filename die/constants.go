package die

// At is a DWARF attribute name (DW_AT_*). The closed set recognized here
// matches DWARF 4/5 plus the Apple and GNU vendor extensions spec.md
// section 6 calls out, numerically aligned with the standard's assigned
// codes (cross-checked against the Go standard library's own
// debug/dwarf/const.go, which encodes the same assignments).
type At uint32

const (
	AtNone             At = 0x00
	AtSibling          At = 0x01
	AtLocation         At = 0x02
	AtName             At = 0x03
	AtOrdering         At = 0x09
	AtByteSize         At = 0x0B
	AtBitOffset        At = 0x0C
	AtBitSize          At = 0x0D
	AtStmtList         At = 0x10
	AtLowpc            At = 0x11
	AtHighpc           At = 0x12
	AtLanguage         At = 0x13
	AtDiscr            At = 0x15
	AtDiscrValue       At = 0x16
	AtVisibility       At = 0x17
	AtImport           At = 0x18
	AtStringLength     At = 0x19
	AtCommonRef        At = 0x1A
	AtCompDir          At = 0x1B
	AtConstValue       At = 0x1C
	AtContainingType   At = 0x1D
	AtDefaultValue     At = 0x1E
	AtInline           At = 0x20
	AtIsOptional       At = 0x21
	AtLowerBound       At = 0x22
	AtProducer         At = 0x25
	AtPrototyped       At = 0x27
	AtReturnAddr       At = 0x2A
	AtStartScope       At = 0x2C
	AtStrideSize       At = 0x2E
	AtUpperBound       At = 0x2F
	AtAbstractOrigin   At = 0x31
	AtAccessibility    At = 0x32
	AtAddrClass        At = 0x33
	AtArtificial       At = 0x34
	AtBaseTypes        At = 0x35
	AtCallingConv      At = 0x36
	AtCount            At = 0x37
	AtDataMemberLoc    At = 0x38
	AtDeclColumn       At = 0x39
	AtDeclFile         At = 0x3A
	AtDeclLine         At = 0x3B
	AtDeclaration      At = 0x3C
	AtDiscrList        At = 0x3D
	AtEncoding         At = 0x3E
	AtExternal         At = 0x3F
	AtFrameBase        At = 0x40
	AtFriend           At = 0x41
	AtIdentifierCase   At = 0x42
	AtMacroInfo        At = 0x43
	AtNamelistItem     At = 0x44
	AtPriority         At = 0x45
	AtSegment          At = 0x46
	AtSpecification    At = 0x47
	AtStaticLink       At = 0x48
	AtType             At = 0x49
	AtUseLocation      At = 0x4A
	AtVarParam         At = 0x4B
	AtVirtuality       At = 0x4C
	AtVtableElemLoc    At = 0x4D
	AtAllocated        At = 0x4E
	AtAssociated       At = 0x4F
	AtDataLocation     At = 0x50
	AtByteStride       At = 0x51
	AtEntryPc          At = 0x52
	AtUseUTF8          At = 0x53
	AtExtension        At = 0x54
	AtRanges           At = 0x55
	AtTrampoline       At = 0x56
	AtCallColumn       At = 0x57
	AtCallFile         At = 0x58
	AtCallLine         At = 0x59
	AtLinkageName      At = 0x6E
	AtCallReturnPC     At = 0x7D
	AtCallOrigin       At = 0x7F

	// Apple vendor extensions (the "user" range 0x2000-0x3fff). Numeric
	// codes follow LLVM's DWARF.def assignments.
	AtAppleOptimized             At = 0x3fe1
	AtAppleFlags                 At = 0x3fe2
	AtAppleIsa                   At = 0x3fe3
	AtAppleBlock                 At = 0x3fe4
	AtAppleMajorRuntimeVers      At = 0x3fe5
	AtAppleRuntimeClass          At = 0x3fe6
	AtAppleOmitFramePtr          At = 0x3fe7
	AtApplePropertyName          At = 0x3fe8
	AtApplePropertyGetter        At = 0x3fe9
	AtApplePropertySetter        At = 0x3fea
	AtApplePropertyAttribute     At = 0x3feb
	AtAppleObjcCompleteType      At = 0x3fec
	AtAppleProperty              At = 0x3fed
	AtAppleObjcDirect            At = 0x3fee
	AtAppleSdk                   At = 0x3fef
)

func (a At) String() string {
	if s, ok := atNames[a]; ok {
		return s
	}
	return "unknown_at"
}

var atNames = map[At]string{
	AtNone: "none", AtSibling: "sibling", AtLocation: "location", AtName: "name",
	AtOrdering: "ordering", AtByteSize: "byte_size", AtBitOffset: "bit_offset",
	AtBitSize: "bit_size", AtStmtList: "stmt_list", AtLowpc: "low_pc",
	AtHighpc: "high_pc", AtLanguage: "language", AtDiscr: "discr",
	AtDiscrValue: "discr_value", AtVisibility: "visibility", AtImport: "import",
	AtStringLength: "string_length", AtCommonRef: "common_reference",
	AtCompDir: "comp_dir", AtConstValue: "const_value",
	AtContainingType: "containing_type", AtDefaultValue: "default_value",
	AtInline: "inline", AtIsOptional: "is_optional", AtLowerBound: "lower_bound",
	AtProducer: "producer", AtPrototyped: "prototyped",
	AtReturnAddr: "return_addr", AtStartScope: "start_scope",
	AtStrideSize: "bit_stride", AtUpperBound: "upper_bound",
	AtAbstractOrigin: "abstract_origin", AtAccessibility: "accessibility",
	AtAddrClass: "address_class", AtArtificial: "artificial",
	AtBaseTypes: "base_types", AtCallingConv: "calling_convention",
	AtCount: "count", AtDataMemberLoc: "data_member_location",
	AtDeclColumn: "decl_column", AtDeclFile: "decl_file", AtDeclLine: "decl_line",
	AtDeclaration: "declaration", AtDiscrList: "discr_list",
	AtEncoding: "encoding", AtExternal: "external", AtFrameBase: "frame_base",
	AtFriend: "friend", AtIdentifierCase: "identifier_case",
	AtMacroInfo: "macro_info", AtNamelistItem: "namelist_item",
	AtPriority: "priority", AtSegment: "segment",
	AtSpecification: "specification", AtStaticLink: "static_link",
	AtType: "type", AtUseLocation: "use_location", AtVarParam: "variable_parameter",
	AtVirtuality: "virtuality", AtVtableElemLoc: "vtable_elem_location",
	AtAllocated: "allocated", AtAssociated: "associated",
	AtDataLocation: "data_location", AtByteStride: "byte_stride",
	AtEntryPc: "entry_pc", AtUseUTF8: "use_utf8", AtExtension: "extension",
	AtRanges: "ranges", AtTrampoline: "trampoline", AtCallColumn: "call_column",
	AtCallFile: "call_file", AtCallLine: "call_line",
	AtLinkageName: "linkage_name", AtCallReturnPC: "call_return_pc",
	AtCallOrigin: "call_origin",
	AtAppleOptimized: "apple_optimized", AtAppleFlags: "apple_flags",
	AtAppleIsa: "apple_isa", AtAppleBlock: "apple_block",
	AtAppleMajorRuntimeVers: "apple_major_runtime_vers",
	AtAppleRuntimeClass:     "apple_runtime_class",
	AtAppleOmitFramePtr:     "apple_omit_frame_ptr",
	AtApplePropertyName:     "apple_property_name",
	AtApplePropertyGetter:   "apple_property_getter",
	AtApplePropertySetter:   "apple_property_setter",
	AtApplePropertyAttribute: "apple_property_attribute",
	AtAppleObjcCompleteType:  "apple_objc_complete_type",
	AtAppleProperty:          "apple_property",
	AtAppleObjcDirect:        "apple_objc_direct",
	AtAppleSdk:               "apple_sdk",
}

// Form is a DWARF attribute encoding form (DW_FORM_*).
type Form uint32

const (
	FormAddr        Form = 0x01
	FormBlock2      Form = 0x03
	FormBlock4      Form = 0x04
	FormData2       Form = 0x05
	FormData4       Form = 0x06
	FormData8       Form = 0x07
	FormString      Form = 0x08
	FormBlock       Form = 0x09
	FormBlock1      Form = 0x0A
	FormData1       Form = 0x0B
	FormFlag        Form = 0x0C
	FormSdata       Form = 0x0D
	FormStrp        Form = 0x0E
	FormUdata       Form = 0x0F
	FormRefAddr     Form = 0x10
	FormRef1        Form = 0x11
	FormRef2        Form = 0x12
	FormRef4        Form = 0x13
	FormRef8        Form = 0x14
	FormRefUdata    Form = 0x15
	FormIndirect    Form = 0x16
	FormSecOffset   Form = 0x17
	FormExprloc     Form = 0x18
	FormFlagPresent Form = 0x19
	FormStrx        Form = 0x1A
	FormAddrx       Form = 0x1B
	FormRefSup4     Form = 0x1C
	FormStrpSup     Form = 0x1D
	FormData16      Form = 0x1E
	FormLineStrp    Form = 0x1F
	FormRefSig8     Form = 0x20
	FormImplicitConst Form = 0x21
	FormLoclistx      Form = 0x22
	FormRnglistx      Form = 0x23
	FormRefSup8       Form = 0x24
	FormStrx1         Form = 0x25
	FormStrx2         Form = 0x26
	FormStrx3         Form = 0x27
	FormStrx4         Form = 0x28
	FormAddrx1        Form = 0x29
	FormAddrx2        Form = 0x2A
	FormAddrx3        Form = 0x2B
	FormAddrx4        Form = 0x2C

	// GNU vendor extension forms (pre-DWARF5 split-dwarf/supplementary-file
	// producers still emit these).
	FormGnuAddrIndex Form = 0x1f01
	FormGnuStrIndex  Form = 0x1f02
	FormGnuRefAlt    Form = 0x1f20
	FormGnuStrpAlt   Form = 0x1f21
)

func (f Form) String() string {
	if s, ok := formNames[f]; ok {
		return s
	}
	return "unknown_form"
}

var formNames = map[Form]string{
	FormAddr: "addr", FormBlock2: "block2", FormBlock4: "block4",
	FormData2: "data2", FormData4: "data4", FormData8: "data8",
	FormString: "string", FormBlock: "block", FormBlock1: "block1",
	FormData1: "data1", FormFlag: "flag", FormSdata: "sdata",
	FormStrp: "strp", FormUdata: "udata", FormRefAddr: "ref_addr",
	FormRef1: "ref1", FormRef2: "ref2", FormRef4: "ref4", FormRef8: "ref8",
	FormRefUdata: "ref_udata", FormIndirect: "indirect",
	FormSecOffset: "sec_offset", FormExprloc: "exprloc",
	FormFlagPresent: "flag_present", FormStrx: "strx", FormAddrx: "addrx",
	FormRefSup4: "ref_sup4", FormStrpSup: "strp_sup", FormData16: "data16",
	FormLineStrp: "line_strp", FormRefSig8: "ref_sig8",
	FormImplicitConst: "implicit_const", FormLoclistx: "loclistx",
	FormRnglistx: "rnglistx", FormRefSup8: "ref_sup8",
	FormStrx1: "strx1", FormStrx2: "strx2", FormStrx3: "strx3", FormStrx4: "strx4",
	FormAddrx1: "addrx1", FormAddrx2: "addrx2", FormAddrx3: "addrx3", FormAddrx4: "addrx4",
	FormGnuAddrIndex: "gnu_addr_index", FormGnuStrIndex: "gnu_str_index",
	FormGnuRefAlt: "gnu_ref_alt", FormGnuStrpAlt: "gnu_strp_alt",
}

// Tag is a DWARF tag (DW_TAG_*) — the classification of a DIE.
type Tag uint32

const (
	TagArrayType              Tag = 0x01
	TagClassType              Tag = 0x02
	TagEntryPoint             Tag = 0x03
	TagEnumerationType        Tag = 0x04
	TagFormalParameter        Tag = 0x05
	TagImportedDeclaration    Tag = 0x08
	TagLabel                  Tag = 0x0A
	TagLexicalBlock           Tag = 0x0B
	TagMember                 Tag = 0x0D
	TagPointerType            Tag = 0x0F
	TagReferenceType          Tag = 0x10
	TagCompileUnit            Tag = 0x11
	TagStringType             Tag = 0x12
	TagStructType             Tag = 0x13
	TagSubroutineType         Tag = 0x15
	TagTypedef                Tag = 0x16
	TagUnionType              Tag = 0x17
	TagUnspecifiedParameters  Tag = 0x18
	TagVariant                Tag = 0x19
	TagInheritance            Tag = 0x1C
	TagInlinedSubroutine      Tag = 0x1D
	TagModule                 Tag = 0x1E
	TagPtrToMemberType        Tag = 0x1F
	TagSetType                Tag = 0x20
	TagSubrangeType           Tag = 0x21
	TagBaseType               Tag = 0x24
	TagConstType              Tag = 0x26
	TagEnumerator             Tag = 0x28
	TagSubprogram             Tag = 0x2E
	TagTemplateTypeParameter  Tag = 0x2F
	TagTemplateValueParameter Tag = 0x30
	TagVariable               Tag = 0x34
	TagVolatileType           Tag = 0x35
	TagRestrictType    Tag = 0x37
	TagNamespace       Tag = 0x39
	TagImportedModule  Tag = 0x3A
	TagUnspecifiedType Tag = 0x3B
	TagPartialUnit     Tag = 0x3C
	TagTypeUnit            Tag = 0x41
	TagRvalueReferenceType Tag = 0x42
	TagTemplateAlias       Tag = 0x43
)

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "unknown_tag"
}

var tagNames = map[Tag]string{
	TagArrayType: "array_type", TagClassType: "class_type",
	TagEntryPoint: "entry_point", TagEnumerationType: "enumeration_type",
	TagFormalParameter: "formal_parameter", TagImportedDeclaration: "imported_declaration",
	TagLabel: "label", TagLexicalBlock: "lexical_block", TagMember: "member",
	TagPointerType: "pointer_type", TagReferenceType: "reference_type",
	TagCompileUnit: "compile_unit", TagStringType: "string_type",
	TagStructType: "structure_type", TagSubroutineType: "subroutine_type",
	TagTypedef: "typedef", TagUnionType: "union_type",
	TagUnspecifiedParameters: "unspecified_parameters", TagVariant: "variant",
	TagInheritance: "inheritance", TagInlinedSubroutine: "inlined_subroutine",
	TagModule: "module", TagPtrToMemberType: "ptr_to_member_type",
	TagSetType: "set_type", TagSubrangeType: "subrange_type",
	TagBaseType: "base_type", TagConstType: "const_type",
	TagEnumerator: "enumerator", TagSubprogram: "subprogram",
	TagTemplateTypeParameter: "template_type_parameter",
	TagTemplateValueParameter: "template_value_parameter",
	TagVariable: "variable", TagVolatileType: "volatile_type",
	TagRestrictType: "restrict_type", TagNamespace: "namespace",
	TagImportedModule: "imported_module", TagUnspecifiedType: "unspecified_type",
	TagPartialUnit: "partial_unit", TagTypeUnit: "type_unit",
	TagRvalueReferenceType: "rvalue_reference_type", TagTemplateAlias: "template_alias",
}
