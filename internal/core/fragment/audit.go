package fragment

// Problem names an advisory audit finding.
type Problem string

const (
	NoBudget     Problem = "no budget"
	NoPrefecture Problem = "no prefecture"
)

// Finding is one advisory result of auditing an episode file.
type Finding struct {
	File    string
	Problem Problem
}

// Audit checks an episode for the fields every regular episode should carry.
// Episode 0 is exempt. Budget may be a number or an explicit null;
// prefecture must be a string.
func Audit(file string, episode *Object) []Finding {
	if FieldOf(episode, "number").IsZero() {
		return nil
	}

	var findings []Finding
	budget := FieldOf(episode, "budget")
	if !budget.IsNumber() && !budget.IsNull() {
		findings = append(findings, Finding{File: file, Problem: NoBudget})
	}
	if !FieldOf(episode, "prefecture").IsString() {
		findings = append(findings, Finding{File: file, Problem: NoPrefecture})
	}
	return findings
}
