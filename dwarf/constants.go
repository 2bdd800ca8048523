// Package dwarf re-exports the attribute/tag/form enumerations from the
// die package as plain aliases, so code throughout this package can spell
// them unqualified (AtName, TagSubprogram, FormStrp, ...) while the
// canonical definitions — along with the Die type they describe — live in
// a single place with no import cycle back here.
package dwarf

import "github.com/adobe-type-tools/orc/die"

type (
	At   = die.At
	Form = die.Form
	Tag  = die.Tag
)

const (
	AtAbstractOrigin = die.AtAbstractOrigin
	AtAccessibility = die.AtAccessibility
	AtAddrClass = die.AtAddrClass
	AtAllocated = die.AtAllocated
	AtAppleBlock = die.AtAppleBlock
	AtAppleFlags = die.AtAppleFlags
	AtAppleIsa = die.AtAppleIsa
	AtAppleMajorRuntimeVers = die.AtAppleMajorRuntimeVers
	AtAppleObjcCompleteType = die.AtAppleObjcCompleteType
	AtAppleObjcDirect = die.AtAppleObjcDirect
	AtAppleOmitFramePtr = die.AtAppleOmitFramePtr
	AtAppleOptimized = die.AtAppleOptimized
	AtAppleProperty = die.AtAppleProperty
	AtApplePropertyAttribute = die.AtApplePropertyAttribute
	AtApplePropertyGetter = die.AtApplePropertyGetter
	AtApplePropertyName = die.AtApplePropertyName
	AtApplePropertySetter = die.AtApplePropertySetter
	AtAppleRuntimeClass = die.AtAppleRuntimeClass
	AtAppleSdk = die.AtAppleSdk
	AtArtificial = die.AtArtificial
	AtAssociated = die.AtAssociated
	AtBaseTypes = die.AtBaseTypes
	AtBitOffset = die.AtBitOffset
	AtBitSize = die.AtBitSize
	AtByteSize = die.AtByteSize
	AtByteStride = die.AtByteStride
	AtCallColumn = die.AtCallColumn
	AtCallFile = die.AtCallFile
	AtCallLine = die.AtCallLine
	AtCallOrigin = die.AtCallOrigin
	AtCallReturnPC = die.AtCallReturnPC
	AtCallingConv = die.AtCallingConv
	AtCommonRef = die.AtCommonRef
	AtCompDir = die.AtCompDir
	AtConstValue = die.AtConstValue
	AtContainingType = die.AtContainingType
	AtCount = die.AtCount
	AtDataLocation = die.AtDataLocation
	AtDataMemberLoc = die.AtDataMemberLoc
	AtDeclColumn = die.AtDeclColumn
	AtDeclFile = die.AtDeclFile
	AtDeclLine = die.AtDeclLine
	AtDeclaration = die.AtDeclaration
	AtDefaultValue = die.AtDefaultValue
	AtDiscr = die.AtDiscr
	AtDiscrList = die.AtDiscrList
	AtDiscrValue = die.AtDiscrValue
	AtEncoding = die.AtEncoding
	AtEntryPc = die.AtEntryPc
	AtExtension = die.AtExtension
	AtExternal = die.AtExternal
	AtFrameBase = die.AtFrameBase
	AtFriend = die.AtFriend
	AtHighpc = die.AtHighpc
	AtIdentifierCase = die.AtIdentifierCase
	AtImport = die.AtImport
	AtInline = die.AtInline
	AtIsOptional = die.AtIsOptional
	AtLanguage = die.AtLanguage
	AtLinkageName = die.AtLinkageName
	AtLocation = die.AtLocation
	AtLowerBound = die.AtLowerBound
	AtLowpc = die.AtLowpc
	AtMacroInfo = die.AtMacroInfo
	AtName = die.AtName
	AtNamelistItem = die.AtNamelistItem
	AtNone = die.AtNone
	AtOrdering = die.AtOrdering
	AtPriority = die.AtPriority
	AtProducer = die.AtProducer
	AtPrototyped = die.AtPrototyped
	AtRanges = die.AtRanges
	AtReturnAddr = die.AtReturnAddr
	AtSegment = die.AtSegment
	AtSibling = die.AtSibling
	AtSpecification = die.AtSpecification
	AtStartScope = die.AtStartScope
	AtStaticLink = die.AtStaticLink
	AtStmtList = die.AtStmtList
	AtStrideSize = die.AtStrideSize
	AtStringLength = die.AtStringLength
	AtTrampoline = die.AtTrampoline
	AtType = die.AtType
	AtUpperBound = die.AtUpperBound
	AtUseLocation = die.AtUseLocation
	AtUseUTF8 = die.AtUseUTF8
	AtVarParam = die.AtVarParam
	AtVirtuality = die.AtVirtuality
	AtVisibility = die.AtVisibility
	AtVtableElemLoc = die.AtVtableElemLoc
)

const (
	FormAddr = die.FormAddr
	FormAddrx = die.FormAddrx
	FormBlock = die.FormBlock
	FormBlock1 = die.FormBlock1
	FormBlock2 = die.FormBlock2
	FormBlock4 = die.FormBlock4
	FormData1 = die.FormData1
	FormData16 = die.FormData16
	FormData2 = die.FormData2
	FormData4 = die.FormData4
	FormData8 = die.FormData8
	FormExprloc = die.FormExprloc
	FormFlag = die.FormFlag
	FormFlagPresent = die.FormFlagPresent
	FormImplicitConst = die.FormImplicitConst
	FormIndirect = die.FormIndirect
	FormLineStrp = die.FormLineStrp
	FormLoclistx = die.FormLoclistx
	FormRef1 = die.FormRef1
	FormRef2 = die.FormRef2
	FormRef4 = die.FormRef4
	FormRef8 = die.FormRef8
	FormRefAddr = die.FormRefAddr
	FormRefSig8 = die.FormRefSig8
	FormRefSup4 = die.FormRefSup4
	FormRefSup8 = die.FormRefSup8
	FormRefUdata = die.FormRefUdata
	FormRnglistx = die.FormRnglistx
	FormSdata = die.FormSdata
	FormSecOffset = die.FormSecOffset
	FormString = die.FormString
	FormStrp = die.FormStrp
	FormStrpSup = die.FormStrpSup
	FormStrx = die.FormStrx
	FormStrx1 = die.FormStrx1
	FormStrx2 = die.FormStrx2
	FormStrx3 = die.FormStrx3
	FormStrx4 = die.FormStrx4
	FormAddrx1 = die.FormAddrx1
	FormAddrx2 = die.FormAddrx2
	FormAddrx3 = die.FormAddrx3
	FormAddrx4 = die.FormAddrx4
	FormUdata = die.FormUdata
	FormGnuAddrIndex = die.FormGnuAddrIndex
	FormGnuStrIndex  = die.FormGnuStrIndex
	FormGnuRefAlt    = die.FormGnuRefAlt
	FormGnuStrpAlt   = die.FormGnuStrpAlt
)

const (
	TagArrayType = die.TagArrayType
	TagBaseType = die.TagBaseType
	TagClassType = die.TagClassType
	TagCompileUnit = die.TagCompileUnit
	TagConstType = die.TagConstType
	TagEntryPoint = die.TagEntryPoint
	TagEnumerationType = die.TagEnumerationType
	TagEnumerator = die.TagEnumerator
	TagFormalParameter = die.TagFormalParameter
	TagImportedDeclaration = die.TagImportedDeclaration
	TagImportedModule = die.TagImportedModule
	TagInheritance = die.TagInheritance
	TagInlinedSubroutine = die.TagInlinedSubroutine
	TagLabel = die.TagLabel
	TagLexicalBlock = die.TagLexicalBlock
	TagMember = die.TagMember
	TagModule = die.TagModule
	TagNamespace = die.TagNamespace
	TagPartialUnit = die.TagPartialUnit
	TagPointerType = die.TagPointerType
	TagPtrToMemberType = die.TagPtrToMemberType
	TagReferenceType = die.TagReferenceType
	TagRestrictType = die.TagRestrictType
	TagRvalueReferenceType = die.TagRvalueReferenceType
	TagSetType = die.TagSetType
	TagStringType = die.TagStringType
	TagStructType = die.TagStructType
	TagSubprogram = die.TagSubprogram
	TagSubrangeType = die.TagSubrangeType
	TagSubroutineType = die.TagSubroutineType
	TagTemplateAlias = die.TagTemplateAlias
	TagTemplateTypeParameter = die.TagTemplateTypeParameter
	TagTemplateValueParameter = die.TagTemplateValueParameter
	TagTypeUnit = die.TagTypeUnit
	TagTypedef = die.TagTypedef
	TagUnionType = die.TagUnionType
	TagUnspecifiedParameters = die.TagUnspecifiedParameters
	TagUnspecifiedType = die.TagUnspecifiedType
	TagVariable = die.TagVariable
	TagVariant = die.TagVariant
	TagVolatileType = die.TagVolatileType
)
