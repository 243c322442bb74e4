package ast

import "vhdlparser/internal/source"

func (n *DesignFile) Span() source.Span { return n.Sp }
func (n *LibraryClause) Span() source.Span { return n.Sp }
func (n *UseClause) Span() source.Span { return n.Sp }
func (n *ContextReference) Span() source.Span { return n.Sp }
func (n *EntityDecl) Span() source.Span { return n.Sp }
func (n *ArchitectureBody) Span() source.Span { return n.Sp }
func (n *PackageDecl) Span() source.Span { return n.Sp }
func (n *PackageInstantiation) Span() source.Span { return n.Sp }
func (n *PackageBody) Span() source.Span { return n.Sp }
func (n *ConfigurationDecl) Span() source.Span { return n.Sp }
func (n *BlockConfig) Span() source.Span { return n.Sp }
func (n *ComponentConfig) Span() source.Span { return n.Sp }
func (n *ComponentSpec) Span() source.Span { return n.Sp }
func (n *BindingIndication) Span() source.Span { return n.Sp }
func (n *ContextDecl) Span() source.Span { return n.Sp }
func (n *InterfaceDecl) Span() source.Span { return n.Sp }
func (n *InterfaceTypeDecl) Span() source.Span { return n.Sp }
func (n *InterfaceSubprogramDecl) Span() source.Span { return n.Sp }
func (n *InterfacePackageDecl) Span() source.Span { return n.Sp }
func (n *SubtypeIndication) Span() source.Span { return n.Sp }
func (n *RangeConstraint) Span() source.Span { return n.Sp }
func (n *IndexConstraint) Span() source.Span { return n.Sp }
func (n *Range) Span() source.Span { return n.Sp }
func (n *SignalDecl) Span() source.Span { return n.Sp }
func (n *ConstantDecl) Span() source.Span { return n.Sp }
func (n *VariableDecl) Span() source.Span { return n.Sp }
func (n *FileDecl) Span() source.Span { return n.Sp }
func (n *TypeDecl) Span() source.Span { return n.Sp }
func (n *SubtypeDecl) Span() source.Span { return n.Sp }
func (n *AliasDecl) Span() source.Span { return n.Sp }
func (n *Signature) Span() source.Span { return n.Sp }
func (n *AttributeDecl) Span() source.Span { return n.Sp }
func (n *AttributeSpec) Span() source.Span { return n.Sp }
func (n *ComponentDecl) Span() source.Span { return n.Sp }
func (n *SubprogramSpec) Span() source.Span { return n.Sp }
func (n *SubprogramDecl) Span() source.Span { return n.Sp }
func (n *SubprogramBody) Span() source.Span { return n.Sp }
func (n *ConfigurationSpec) Span() source.Span { return n.Sp }
func (n *EnumerationType) Span() source.Span { return n.Sp }
func (n *RangeType) Span() source.Span { return n.Sp }
func (n *PhysicalType) Span() source.Span { return n.Sp }
func (n *UnitDecl) Span() source.Span { return n.Sp }
func (n *ArrayType) Span() source.Span { return n.Sp }
func (n *IndexSubtype) Span() source.Span { return n.Sp }
func (n *RecordType) Span() source.Span { return n.Sp }
func (n *ElementDecl) Span() source.Span { return n.Sp }
func (n *AccessType) Span() source.Span { return n.Sp }
func (n *FileType) Span() source.Span { return n.Sp }
func (n *ProtectedType) Span() source.Span { return n.Sp }
func (n *ProtectedBody) Span() source.Span { return n.Sp }
func (n *ProcessStmt) Span() source.Span { return n.Sp }
func (n *ConcSignalAssign) Span() source.Span { return n.Sp }
func (n *ConditionalAssign) Span() source.Span { return n.Sp }
func (n *ConditionalWaveform) Span() source.Span { return n.Sp }
func (n *SelectedAssign) Span() source.Span { return n.Sp }
func (n *SelectedWaveform) Span() source.Span { return n.Sp }
func (n *DelayMechanism) Span() source.Span { return n.Sp }
func (n *WaveformElement) Span() source.Span { return n.Sp }
func (n *ComponentInstantiation) Span() source.Span { return n.Sp }
func (n *InstantiatedUnit) Span() source.Span { return n.Sp }
func (n *BlockStmt) Span() source.Span { return n.Sp }
func (n *ForGenerate) Span() source.Span { return n.Sp }
func (n *IfGenerate) Span() source.Span { return n.Sp }
func (n *GenerateBranch) Span() source.Span { return n.Sp }
func (n *CaseGenerate) Span() source.Span { return n.Sp }
func (n *ConcProcedureCall) Span() source.Span { return n.Sp }
func (n *ConcAssertion) Span() source.Span { return n.Sp }
func (n *SignalAssign) Span() source.Span { return n.Sp }
func (n *VariableAssign) Span() source.Span { return n.Sp }
func (n *ConditionalVariableAssign) Span() source.Span { return n.Sp }
func (n *ConditionalValue) Span() source.Span { return n.Sp }
func (n *IfStmt) Span() source.Span { return n.Sp }
func (n *IfBranch) Span() source.Span { return n.Sp }
func (n *CaseStmt) Span() source.Span { return n.Sp }
func (n *CaseAlternative) Span() source.Span { return n.Sp }
func (n *LoopStmt) Span() source.Span { return n.Sp }
func (n *WhileScheme) Span() source.Span { return n.Sp }
func (n *ForScheme) Span() source.Span { return n.Sp }
func (n *NextStmt) Span() source.Span { return n.Sp }
func (n *ExitStmt) Span() source.Span { return n.Sp }
func (n *ReturnStmt) Span() source.Span { return n.Sp }
func (n *NullStmt) Span() source.Span { return n.Sp }
func (n *WaitStmt) Span() source.Span { return n.Sp }
func (n *AssertStmt) Span() source.Span { return n.Sp }
func (n *ReportStmt) Span() source.Span { return n.Sp }
func (n *ProcedureCall) Span() source.Span { return n.Sp }
func (n *BinaryExpr) Span() source.Span { return n.Sp }
func (n *UnaryExpr) Span() source.Span { return n.Sp }
func (n *ParenExpr) Span() source.Span { return n.Sp }
func (n *SimpleName) Span() source.Span { return n.Sp }
func (n *SelectedName) Span() source.Span { return n.Sp }
func (n *AttributeName) Span() source.Span { return n.Sp }
func (n *CallOrIndex) Span() source.Span { return n.Sp }
func (n *SliceName) Span() source.Span { return n.Sp }
func (n *ExternalName) Span() source.Span { return n.Sp }
func (n *Association) Span() source.Span { return n.Sp }
func (n *Literal) Span() source.Span { return n.Sp }
func (n *PhysicalLiteral) Span() source.Span { return n.Sp }
func (n *Aggregate) Span() source.Span { return n.Sp }
func (n *ElementAssociation) Span() source.Span { return n.Sp }
func (n *OthersChoice) Span() source.Span { return n.Sp }
func (n *QualifiedExpr) Span() source.Span { return n.Sp }
func (n *Allocator) Span() source.Span { return n.Sp }
func (n *Open) Span() source.Span { return n.Sp }
func (n *Unaffected) Span() source.Span { return n.Sp }
func (n *Box) Span() source.Span { return n.Sp }

func (*DesignFile) Kind() string { return "design-file" }
func (*LibraryClause) Kind() string { return "library-clause" }
func (*UseClause) Kind() string { return "use-clause" }
func (*ContextReference) Kind() string { return "context-reference" }
func (*EntityDecl) Kind() string { return "entity-declaration" }
func (*ArchitectureBody) Kind() string { return "architecture-body" }
func (*PackageDecl) Kind() string { return "package-declaration" }
func (*PackageInstantiation) Kind() string { return "package-instantiation" }
func (*PackageBody) Kind() string { return "package-body" }
func (*ConfigurationDecl) Kind() string { return "configuration-declaration" }
func (*BlockConfig) Kind() string { return "block-configuration" }
func (*ComponentConfig) Kind() string { return "component-configuration" }
func (*ComponentSpec) Kind() string { return "component-specification" }
func (*BindingIndication) Kind() string { return "binding-indication" }
func (*ContextDecl) Kind() string { return "context-declaration" }
func (*InterfaceTypeDecl) Kind() string { return "interface-type-declaration" }
func (*InterfaceSubprogramDecl) Kind() string { return "interface-subprogram-declaration" }
func (*InterfacePackageDecl) Kind() string { return "interface-package-declaration" }
func (*SubtypeIndication) Kind() string { return "subtype-indication" }
func (*RangeConstraint) Kind() string { return "range-constraint" }
func (*IndexConstraint) Kind() string { return "index-constraint" }
func (*Range) Kind() string { return "range" }
func (*SignalDecl) Kind() string { return "signal-declaration" }
func (*ConstantDecl) Kind() string { return "constant-declaration" }
func (*VariableDecl) Kind() string { return "variable-declaration" }
func (*FileDecl) Kind() string { return "file-declaration" }
func (*TypeDecl) Kind() string { return "type-declaration" }
func (*SubtypeDecl) Kind() string { return "subtype-declaration" }
func (*AliasDecl) Kind() string { return "alias-declaration" }
func (*Signature) Kind() string { return "signature" }
func (*AttributeDecl) Kind() string { return "attribute-declaration" }
func (*AttributeSpec) Kind() string { return "attribute-specification" }
func (*ComponentDecl) Kind() string { return "component-declaration" }
func (*SubprogramDecl) Kind() string { return "subprogram-declaration" }
func (*SubprogramBody) Kind() string { return "subprogram-body" }
func (*ConfigurationSpec) Kind() string { return "configuration-specification" }
func (*EnumerationType) Kind() string { return "enumeration-type-definition" }
func (*RangeType) Kind() string { return "range-type-definition" }
func (*PhysicalType) Kind() string { return "physical-type-definition" }
func (*UnitDecl) Kind() string { return "secondary-unit-declaration" }
func (*IndexSubtype) Kind() string { return "index-subtype-definition" }
func (*RecordType) Kind() string { return "record-type-definition" }
func (*ElementDecl) Kind() string { return "element-declaration" }
func (*AccessType) Kind() string { return "access-type-definition" }
func (*FileType) Kind() string { return "file-type-definition" }
func (*ProtectedType) Kind() string { return "protected-type-declaration" }
func (*ProtectedBody) Kind() string { return "protected-type-body" }
func (*ProcessStmt) Kind() string { return "process-statement" }
func (*ConcSignalAssign) Kind() string { return "concurrent-signal-assignment" }
func (*ConditionalAssign) Kind() string { return "conditional-signal-assignment" }
func (*ConditionalWaveform) Kind() string { return "conditional-waveform" }
func (*SelectedAssign) Kind() string { return "selected-signal-assignment" }
func (*SelectedWaveform) Kind() string { return "selected-waveform" }
func (*DelayMechanism) Kind() string { return "delay-mechanism" }
func (*WaveformElement) Kind() string { return "waveform-element" }
func (*ComponentInstantiation) Kind() string { return "component-instantiation" }
func (*InstantiatedUnit) Kind() string { return "instantiated-unit" }
func (*BlockStmt) Kind() string { return "block-statement" }
func (*ForGenerate) Kind() string { return "for-generate-statement" }
func (*IfGenerate) Kind() string { return "if-generate-statement" }
func (*GenerateBranch) Kind() string { return "generate-branch" }
func (*CaseGenerate) Kind() string { return "case-generate-statement" }
func (*ConcProcedureCall) Kind() string { return "concurrent-procedure-call" }
func (*ConcAssertion) Kind() string { return "concurrent-assertion" }
func (*SignalAssign) Kind() string { return "signal-assignment" }
func (*VariableAssign) Kind() string { return "variable-assignment" }
func (*ConditionalVariableAssign) Kind() string { return "conditional-variable-assignment" }
func (*ConditionalValue) Kind() string { return "conditional-value" }
func (*IfStmt) Kind() string { return "if-statement" }
func (*IfBranch) Kind() string { return "if-branch" }
func (*CaseStmt) Kind() string { return "case-statement" }
func (*CaseAlternative) Kind() string { return "case-alternative" }
func (*LoopStmt) Kind() string { return "loop-statement" }
func (*WhileScheme) Kind() string { return "while-scheme" }
func (*ForScheme) Kind() string { return "for-scheme" }
func (*NextStmt) Kind() string { return "next-statement" }
func (*ExitStmt) Kind() string { return "exit-statement" }
func (*ReturnStmt) Kind() string { return "return-statement" }
func (*NullStmt) Kind() string { return "null-statement" }
func (*WaitStmt) Kind() string { return "wait-statement" }
func (*AssertStmt) Kind() string { return "assertion-statement" }
func (*ReportStmt) Kind() string { return "report-statement" }
func (*ProcedureCall) Kind() string { return "procedure-call-statement" }
func (*BinaryExpr) Kind() string { return "binary-expression" }
func (*UnaryExpr) Kind() string { return "unary-expression" }
func (*ParenExpr) Kind() string { return "parenthesized-expression" }
func (*SimpleName) Kind() string { return "simple-name" }
func (*SelectedName) Kind() string { return "selected-name" }
func (*AttributeName) Kind() string { return "attribute-name" }
func (*CallOrIndex) Kind() string { return "call-or-index" }
func (*SliceName) Kind() string { return "slice-name" }
func (*ExternalName) Kind() string { return "external-name" }
func (*Association) Kind() string { return "association" }
func (*Literal) Kind() string { return "literal" }
func (*PhysicalLiteral) Kind() string { return "physical-literal" }
func (*Aggregate) Kind() string { return "aggregate" }
func (*ElementAssociation) Kind() string { return "element-association" }
func (*OthersChoice) Kind() string { return "others-choice" }
func (*QualifiedExpr) Kind() string { return "qualified-expression" }
func (*Allocator) Kind() string { return "allocator" }
func (*Open) Kind() string { return "open" }
func (*Unaffected) Kind() string { return "unaffected" }
func (*Box) Kind() string { return "box" }

func (n *InterfaceDecl) Kind() string {
	switch n.Role {
	case RoleGeneric:
		return "generic-declaration"
	case RolePort:
		return "port-declaration"
	default:
		return "parameter-declaration"
	}
}

func (n *SubprogramSpec) Kind() string {
	if n.Function {
		return "function-specification"
	}
	return "procedure-specification"
}

func (n *ArrayType) Kind() string {
	if n.Unbounded {
		return "unbounded-array-definition"
	}
	return "constrained-array-definition"
}

func (*EntityDecl) unitNode() {}
func (*ArchitectureBody) unitNode() {}
func (*PackageDecl) unitNode() {}
func (*PackageInstantiation) unitNode() {}
func (*PackageBody) unitNode() {}
func (*ConfigurationDecl) unitNode() {}
func (*ContextDecl) unitNode() {}

func (*LibraryClause) contextNode() {}
func (*UseClause) contextNode() {}
func (*ContextReference) contextNode() {}

func (*UseClause) declNode() {}
func (*PackageDecl) declNode() {}
func (*PackageInstantiation) declNode() {}
func (*PackageBody) declNode() {}
func (*SignalDecl) declNode() {}
func (*ConstantDecl) declNode() {}
func (*VariableDecl) declNode() {}
func (*FileDecl) declNode() {}
func (*TypeDecl) declNode() {}
func (*SubtypeDecl) declNode() {}
func (*AliasDecl) declNode() {}
func (*AttributeDecl) declNode() {}
func (*AttributeSpec) declNode() {}
func (*ComponentDecl) declNode() {}
func (*SubprogramDecl) declNode() {}
func (*SubprogramBody) declNode() {}
func (*ConfigurationSpec) declNode() {}

func (*ProcessStmt) stmtNode() {}
func (*ConcSignalAssign) stmtNode() {}
func (*ConditionalAssign) stmtNode() {}
func (*SelectedAssign) stmtNode() {}
func (*ComponentInstantiation) stmtNode() {}
func (*BlockStmt) stmtNode() {}
func (*ForGenerate) stmtNode() {}
func (*IfGenerate) stmtNode() {}
func (*CaseGenerate) stmtNode() {}
func (*ConcProcedureCall) stmtNode() {}
func (*ConcAssertion) stmtNode() {}
func (*SignalAssign) stmtNode() {}
func (*VariableAssign) stmtNode() {}
func (*ConditionalVariableAssign) stmtNode() {}
func (*IfStmt) stmtNode() {}
func (*CaseStmt) stmtNode() {}
func (*LoopStmt) stmtNode() {}
func (*NextStmt) stmtNode() {}
func (*ExitStmt) stmtNode() {}
func (*ReturnStmt) stmtNode() {}
func (*NullStmt) stmtNode() {}
func (*WaitStmt) stmtNode() {}
func (*AssertStmt) stmtNode() {}
func (*ReportStmt) stmtNode() {}
func (*ProcedureCall) stmtNode() {}

func (*BinaryExpr) exprNode() {}
func (*UnaryExpr) exprNode() {}
func (*ParenExpr) exprNode() {}
func (*SimpleName) exprNode() {}
func (*SelectedName) exprNode() {}
func (*AttributeName) exprNode() {}
func (*CallOrIndex) exprNode() {}
func (*SliceName) exprNode() {}
func (*ExternalName) exprNode() {}
func (*Literal) exprNode() {}
func (*PhysicalLiteral) exprNode() {}
func (*Aggregate) exprNode() {}
func (*QualifiedExpr) exprNode() {}
func (*Allocator) exprNode() {}
func (*Open) exprNode() {}
func (*Unaffected) exprNode() {}
func (*Box) exprNode() {}

func (*EnumerationType) typeDefNode() {}
func (*RangeType) typeDefNode() {}
func (*PhysicalType) typeDefNode() {}
func (*ArrayType) typeDefNode() {}
func (*RecordType) typeDefNode() {}
func (*AccessType) typeDefNode() {}
func (*FileType) typeDefNode() {}
func (*ProtectedType) typeDefNode() {}
func (*ProtectedBody) typeDefNode() {}

func (*InterfaceDecl) interfaceNode() {}
func (*InterfaceTypeDecl) interfaceNode() {}
func (*InterfaceSubprogramDecl) interfaceNode() {}
func (*InterfacePackageDecl) interfaceNode() {}

// KnownKinds lists every Kind a node can report, sorted.
func KnownKinds() []string {
	return []string{
		"access-type-definition",
		"aggregate",
		"alias-declaration",
		"allocator",
		"architecture-body",
		"assertion-statement",
		"association",
		"attribute-declaration",
		"attribute-name",
		"attribute-specification",
		"binary-expression",
		"binding-indication",
		"block-configuration",
		"block-statement",
		"box",
		"call-or-index",
		"case-alternative",
		"case-generate-statement",
		"case-statement",
		"component-configuration",
		"component-declaration",
		"component-instantiation",
		"component-specification",
		"concurrent-assertion",
		"concurrent-procedure-call",
		"concurrent-signal-assignment",
		"conditional-signal-assignment",
		"conditional-value",
		"conditional-variable-assignment",
		"conditional-waveform",
		"configuration-declaration",
		"configuration-specification",
		"constant-declaration",
		"constrained-array-definition",
		"context-declaration",
		"context-reference",
		"delay-mechanism",
		"design-file",
		"element-association",
		"element-declaration",
		"entity-declaration",
		"enumeration-type-definition",
		"exit-statement",
		"external-name",
		"file-declaration",
		"file-type-definition",
		"for-generate-statement",
		"for-scheme",
		"function-specification",
		"generate-branch",
		"generic-declaration",
		"if-branch",
		"if-generate-statement",
		"if-statement",
		"index-constraint",
		"index-subtype-definition",
		"instantiated-unit",
		"interface-package-declaration",
		"interface-subprogram-declaration",
		"interface-type-declaration",
		"library-clause",
		"literal",
		"loop-statement",
		"next-statement",
		"null-statement",
		"open",
		"others-choice",
		"package-body",
		"package-declaration",
		"package-instantiation",
		"parameter-declaration",
		"parenthesized-expression",
		"physical-literal",
		"physical-type-definition",
		"port-declaration",
		"procedure-call-statement",
		"procedure-specification",
		"process-statement",
		"protected-type-body",
		"protected-type-declaration",
		"qualified-expression",
		"range",
		"range-constraint",
		"range-type-definition",
		"record-type-definition",
		"report-statement",
		"return-statement",
		"secondary-unit-declaration",
		"selected-name",
		"selected-signal-assignment",
		"selected-waveform",
		"signal-assignment",
		"signal-declaration",
		"signature",
		"simple-name",
		"slice-name",
		"subprogram-body",
		"subprogram-declaration",
		"subtype-declaration",
		"subtype-indication",
		"type-declaration",
		"unaffected",
		"unary-expression",
		"unbounded-array-definition",
		"use-clause",
		"variable-assignment",
		"variable-declaration",
		"wait-statement",
		"waveform-element",
		"while-scheme",
	}
}
