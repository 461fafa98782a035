package rule

// BuiltinResource is the default rule-table resource, expressed in the
// same path-keyed document format LoadResource accepts from disk, so the
// builtin rules and a user-supplied rule file go through the exact same
// parsing path. "rules.immediate" holds the one-premise rules;
// "rules.nal1" holds the first-order syllogisms, each with its primed
// inverse variant covering the swapped premise order.
const BuiltinResource = `
rules:
  immediate: |
    ' immediate one-premise rules
    <S --> P> |- <P --> S> .conversion
    <S --> P> |- (--,<S --> P>) .negative
    <S --> P> |- <(--,P) --> (--,S)> .contraposition
  nal1: |
    ' first-order syllogisms over a shared middle term M
    {<M --> P>. <S --> M>} |- <S --> P> .deduction
    {<S --> M>. <M --> P>} |- <S --> P> .deduction'
    {<P --> M>. <S --> M>} |- <S --> P> .abduction
    {<S --> M>. <P --> M>} |- <S --> P> .abduction'
    {<M --> P>. <M --> S>} |- <S --> P> .induction
    {<M --> S>. <M --> P>} |- <S --> P> .induction'
    {<P --> M>. <M --> S>} |- <S --> P> .exemplification
    {<M --> S>. <P --> M>} |- <S --> P> .exemplification'
`

// BuiltinKeys addresses every block of BuiltinResource, in load order.
var BuiltinKeys = []string{"rules.immediate", "rules.nal1"}

// Builtin loads the full builtin rule set. The resource is a compile-time
// constant, so a load failure is a programming error, not input error.
func Builtin() []Rule {
	rules, err := LoadResource([]byte(BuiltinResource), BuiltinKeys...)
	if err != nil {
		panic("rule: builtin table failed to parse: " + err.Error())
	}
	return rules
}
