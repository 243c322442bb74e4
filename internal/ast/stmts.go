package ast

import "vhdlparser/internal/source"

type ProcessStmt struct {
	Sp             source.Span
	Label          string
	Postponed      bool
	SensitivityAll bool
	Sensitivity    []Expr
	Decls          []Decl
	Stmts          []Stmt
	EndLabel       string
}

func (n *ProcessStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("postponed", n.Postponed),
		f("sensitivity_all", n.SensitivityAll),
		f("sensitivity", many(n.Sensitivity)),
		f("declarations", many(n.Decls)),
		f("statements", many(n.Stmts)),
		f("end_label", optName(n.EndLabel)),
	}
}

// ConcSignalAssign: [label :] [postponed] target <= [guarded] [delay] waveform;
type ConcSignalAssign struct {
	Sp        source.Span
	Label     string
	Postponed bool
	Target    Expr
	Guarded   bool
	Delay     *DelayMechanism
	Waveform  []*WaveformElement
}

func (n *ConcSignalAssign) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("postponed", n.Postponed),
		f("target", one(n.Target)),
		f("guarded", n.Guarded),
		f("delay", one(n.Delay)),
		f("waveform", many(n.Waveform)),
	}
}

// ConditionalAssign: target <= w1 when c1 else w2; (concurrent or, from 2008, sequential)
type ConditionalAssign struct {
	Sp           source.Span
	Label        string
	Postponed    bool
	Target       Expr
	Guarded      bool
	Delay        *DelayMechanism
	Alternatives []*ConditionalWaveform
}

func (n *ConditionalAssign) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("postponed", n.Postponed),
		f("target", one(n.Target)),
		f("guarded", n.Guarded),
		f("delay", one(n.Delay)),
		f("alternatives", many(n.Alternatives)),
	}
}

// ConditionalWaveform has a nil Condition for the final else branch.
type ConditionalWaveform struct {
	Sp        source.Span
	Waveform  []*WaveformElement
	Condition Expr
}

func (n *ConditionalWaveform) Fields() []Field {
	return []Field{
		f("waveform", many(n.Waveform)),
		f("condition", one(n.Condition)),
	}
}

// SelectedAssign: with sel select[?] target <= w1 when c1, w2 when others;
type SelectedAssign struct {
	Sp           source.Span
	Label        string
	Postponed    bool
	Selector     Expr
	Matching     bool
	Target       Expr
	Guarded      bool
	Delay        *DelayMechanism
	Alternatives []*SelectedWaveform
}

func (n *SelectedAssign) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("postponed", n.Postponed),
		f("selector", one(n.Selector)),
		f("matching", n.Matching),
		f("target", one(n.Target)),
		f("guarded", n.Guarded),
		f("delay", one(n.Delay)),
		f("alternatives", many(n.Alternatives)),
	}
}

type SelectedWaveform struct {
	Sp       source.Span
	Waveform []*WaveformElement
	Choices  []Node
}

func (n *SelectedWaveform) Fields() []Field {
	return []Field{
		f("waveform", many(n.Waveform)),
		f("choices", many(n.Choices)),
	}
}

// DelayMechanism: transport | [reject time] inertial
type DelayMechanism struct {
	Sp        source.Span
	Mechanism string
	Reject    Expr
}

func (n *DelayMechanism) Fields() []Field {
	return []Field{
		f("mechanism", n.Mechanism),
		f("reject", one(n.Reject)),
	}
}

// WaveformElement: value [after time]
type WaveformElement struct {
	Sp    source.Span
	Value Expr
	After Expr
}

func (n *WaveformElement) Fields() []Field {
	return []Field{
		f("value", one(n.Value)),
		f("after", one(n.After)),
	}
}

type ComponentInstantiation struct {
	Sp         source.Span
	Label      string
	Unit       *InstantiatedUnit
	GenericMap []*Association
	PortMap    []*Association
}

func (n *ComponentInstantiation) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("unit", one(n.Unit)),
		f("generic_map", many(n.GenericMap)),
		f("port_map", many(n.PortMap)),
	}
}

// InstantiatedUnit: [component] name | entity name [(arch)] | configuration name | open
type InstantiatedUnit struct {
	Sp           source.Span
	UnitKind     string
	Name         Expr
	Architecture string
}

func (n *InstantiatedUnit) Fields() []Field {
	return []Field{
		f("unit_kind", n.UnitKind),
		f("name", one(n.Name)),
		f("architecture", optName(n.Architecture)),
	}
}

type BlockStmt struct {
	Sp         source.Span
	Label      string
	Guard      Expr
	Generics   []InterfaceItem
	GenericMap []*Association
	Ports      []InterfaceItem
	PortMap    []*Association
	Decls      []Decl
	Stmts      []Stmt
	EndLabel   string
}

func (n *BlockStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("guard", one(n.Guard)),
		f("generics", many(n.Generics)),
		f("generic_map", many(n.GenericMap)),
		f("ports", many(n.Ports)),
		f("port_map", many(n.PortMap)),
		f("declarations", many(n.Decls)),
		f("statements", many(n.Stmts)),
		f("end_label", optName(n.EndLabel)),
	}
}

type ForGenerate struct {
	Sp       source.Span
	Label    string
	Param    string
	Range    Node
	Decls    []Decl
	Stmts    []Stmt
	EndLabel string
}

func (n *ForGenerate) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("parameter", n.Param),
		f("range", one(n.Range)),
		f("declarations", many(n.Decls)),
		f("statements", many(n.Stmts)),
		f("end_label", optName(n.EndLabel)),
	}
}

type IfGenerate struct {
	Sp       source.Span
	Label    string
	Branches []*GenerateBranch
	EndLabel string
}

func (n *IfGenerate) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("branches", many(n.Branches)),
		f("end_label", optName(n.EndLabel)),
	}
}

// GenerateBranch is one arm of an if or case generate. Condition is nil for
// the else arm; Choices is set only for case generate.
type GenerateBranch struct {
	Sp        source.Span
	AltLabel  string
	Condition Expr
	Choices   []Node
	Decls     []Decl
	Stmts     []Stmt
}

func (n *GenerateBranch) Fields() []Field {
	return []Field{
		f("alternative_label", optName(n.AltLabel)),
		f("condition", one(n.Condition)),
		f("choices", many(n.Choices)),
		f("declarations", many(n.Decls)),
		f("statements", many(n.Stmts)),
	}
}

type CaseGenerate struct {
	Sp       source.Span
	Label    string
	Selector Expr
	Branches []*GenerateBranch
	EndLabel string
}

func (n *CaseGenerate) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("selector", one(n.Selector)),
		f("branches", many(n.Branches)),
		f("end_label", optName(n.EndLabel)),
	}
}

type ConcProcedureCall struct {
	Sp        source.Span
	Label     string
	Postponed bool
	Call      Expr
}

func (n *ConcProcedureCall) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("postponed", n.Postponed),
		f("call", one(n.Call)),
	}
}

type ConcAssertion struct {
	Sp        source.Span
	Label     string
	Postponed bool
	Condition Expr
	Report    Expr
	Severity  Expr
}

func (n *ConcAssertion) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("postponed", n.Postponed),
		f("condition", one(n.Condition)),
		f("report", one(n.Report)),
		f("severity", one(n.Severity)),
	}
}

// SignalAssign is the sequential simple signal assignment.
type SignalAssign struct {
	Sp       source.Span
	Label    string
	Target   Expr
	Delay    *DelayMechanism
	Waveform []*WaveformElement
}

func (n *SignalAssign) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("target", one(n.Target)),
		f("delay", one(n.Delay)),
		f("waveform", many(n.Waveform)),
	}
}

type VariableAssign struct {
	Sp     source.Span
	Label  string
	Target Expr
	Value  Expr
}

func (n *VariableAssign) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("target", one(n.Target)),
		f("value", one(n.Value)),
	}
}

// ConditionalVariableAssign: v := a when c else b;
type ConditionalVariableAssign struct {
	Sp           source.Span
	Label        string
	Target       Expr
	Alternatives []*ConditionalValue
}

func (n *ConditionalVariableAssign) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("target", one(n.Target)),
		f("alternatives", many(n.Alternatives)),
	}
}

type ConditionalValue struct {
	Sp        source.Span
	Value     Expr
	Condition Expr
}

func (n *ConditionalValue) Fields() []Field {
	return []Field{
		f("value", one(n.Value)),
		f("condition", one(n.Condition)),
	}
}

type IfStmt struct {
	Sp       source.Span
	Label    string
	Branches []*IfBranch
	EndLabel string
}

func (n *IfStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("branches", many(n.Branches)),
		f("end_label", optName(n.EndLabel)),
	}
}

// IfBranch has a nil Condition for the else branch.
type IfBranch struct {
	Sp        source.Span
	Condition Expr
	Stmts     []Stmt
}

func (n *IfBranch) Fields() []Field {
	return []Field{
		f("condition", one(n.Condition)),
		f("statements", many(n.Stmts)),
	}
}

type CaseStmt struct {
	Sp           source.Span
	Label        string
	Matching     bool
	Selector     Expr
	Alternatives []*CaseAlternative
	EndLabel     string
}

func (n *CaseStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("matching", n.Matching),
		f("selector", one(n.Selector)),
		f("alternatives", many(n.Alternatives)),
		f("end_label", optName(n.EndLabel)),
	}
}

type CaseAlternative struct {
	Sp      source.Span
	Choices []Node
	Stmts   []Stmt
}

func (n *CaseAlternative) Fields() []Field {
	return []Field{
		f("choices", many(n.Choices)),
		f("statements", many(n.Stmts)),
	}
}

// LoopStmt has a nil Scheme for a plain loop.
type LoopStmt struct {
	Sp       source.Span
	Label    string
	Scheme   Node // *WhileScheme or *ForScheme
	Stmts    []Stmt
	EndLabel string
}

func (n *LoopStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("scheme", one(n.Scheme)),
		f("statements", many(n.Stmts)),
		f("end_label", optName(n.EndLabel)),
	}
}

type WhileScheme struct {
	Sp        source.Span
	Condition Expr
}

func (n *WhileScheme) Fields() []Field {
	return []Field{f("condition", one(n.Condition))}
}

type ForScheme struct {
	Sp    source.Span
	Param string
	Range Node
}

func (n *ForScheme) Fields() []Field {
	return []Field{
		f("parameter", n.Param),
		f("range", one(n.Range)),
	}
}

// NextStmt and ExitStmt share a shape: [label :] next|exit [loop_label] [when condition];
type NextStmt struct {
	Sp        source.Span
	Label     string
	LoopLabel string
	Condition Expr
}

func (n *NextStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("loop_label", optName(n.LoopLabel)),
		f("condition", one(n.Condition)),
	}
}

type ExitStmt struct {
	Sp        source.Span
	Label     string
	LoopLabel string
	Condition Expr
}

func (n *ExitStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("loop_label", optName(n.LoopLabel)),
		f("condition", one(n.Condition)),
	}
}

type ReturnStmt struct {
	Sp    source.Span
	Label string
	Value Expr
}

func (n *ReturnStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("value", one(n.Value)),
	}
}

type NullStmt struct {
	Sp    source.Span
	Label string
}

func (n *NullStmt) Fields() []Field {
	return []Field{f("label", optName(n.Label))}
}

// WaitStmt: wait [on s1, s2] [until cond] [for time];
type WaitStmt struct {
	Sp    source.Span
	Label string
	On    []Expr
	Until Expr
	For   Expr
}

func (n *WaitStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("on", many(n.On)),
		f("until", one(n.Until)),
		f("for", one(n.For)),
	}
}

type AssertStmt struct {
	Sp        source.Span
	Label     string
	Condition Expr
	Report    Expr
	Severity  Expr
}

func (n *AssertStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("condition", one(n.Condition)),
		f("report", one(n.Report)),
		f("severity", one(n.Severity)),
	}
}

type ReportStmt struct {
	Sp       source.Span
	Label    string
	Message  Expr
	Severity Expr
}

func (n *ReportStmt) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("message", one(n.Message)),
		f("severity", one(n.Severity)),
	}
}

type ProcedureCall struct {
	Sp    source.Span
	Label string
	Call  Expr
}

func (n *ProcedureCall) Fields() []Field {
	return []Field{
		f("label", optName(n.Label)),
		f("call", one(n.Call)),
	}
}
