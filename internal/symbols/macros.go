package symbols

// Greek holds the TeX Greek letter macros.
var Greek = Table{
	{`\alpha`, "α"},
	{`\beta`, "β"},
	{`\gamma`, "γ"},
	{`\delta`, "δ"},
	{`\epsilon`, "ϵ"},
	{`\varepsilon`, "ε"},
	{`\zeta`, "ζ"},
	{`\eta`, "η"},
	{`\theta`, "θ"},
	{`\vartheta`, "ϑ"},
	{`\iota`, "ι"},
	{`\kappa`, "κ"},
	{`\lambda`, "λ"},
	{`\mu`, "μ"},
	{`\nu`, "ν"},
	{`\xi`, "ξ"},
	{`\omicron`, "ο"},
	{`\pi`, "π"},
	{`\varpi`, "ϖ"},
	{`\rho`, "ρ"},
	{`\varrho`, "ϱ"},
	{`\sigma`, "σ"},
	{`\varsigma`, "ς"},
	{`\tau`, "τ"},
	{`\upsilon`, "υ"},
	{`\phi`, "ϕ"},
	{`\varphi`, "φ"},
	{`\chi`, "χ"},
	{`\psi`, "ψ"},
	{`\omega`, "ω"},
	{`\Gamma`, "Γ"},
	{`\Delta`, "Δ"},
	{`\Theta`, "Θ"},
	{`\Lambda`, "Λ"},
	{`\Xi`, "Ξ"},
	{`\Pi`, "Π"},
	{`\Sigma`, "Σ"},
	{`\Upsilon`, "Υ"},
	{`\Phi`, "Φ"},
	{`\Psi`, "Ψ"},
	{`\Omega`, "Ω"},
}

// MainMacros is the curated macro set shown first in the help.
// A key must come before any other key it is a prefix of.
var MainMacros = Table{
	{`\Leftrightarrow`, "⇔"},
	{`\Rightarrow`, "⇒"},
	{`\Leftarrow`, "⇐"},
	{`\leftrightarrow`, "↔"},
	{`\rightarrow`, "→"},
	{`\leftarrow`, "←"},
	{`\mapsto`, "↦"},
	{`\implies`, "⟹"},
	{`\iff`, "⟺"},
	{`\top`, "⊤"},
	{`\to`, "→"},
	{`\gets`, "←"},
	{`\leq`, "≤"},
	{`\le`, "≤"},
	{`\geq`, "≥"},
	{`\ge`, "≥"},
	{`\neq`, "≠"},
	{`\nexists`, "∄"},
	{`\nearrow`, "↗"},
	{`\neg`, "¬"},
	{`\ne`, "≠"},
	{`\approx`, "≈"},
	{`\equiv`, "≡"},
	{`\simeq`, "≃"},
	{`\sim`, "∼"},
	{`\propto`, "∝"},
	{`\pm`, "±"},
	{`\mp`, "∓"},
	{`\times`, "×"},
	{`\div`, "÷"},
	{`\cdots`, "⋯"},
	{`\cdot`, "·"},
	{`\ldots`, "…"},
	{`\infty`, "∞"},
	{`\int`, "∫"},
	{`\in`, "∈"},
	{`\notin`, "∉"},
	{`\subseteq`, "⊆"},
	{`\subset`, "⊂"},
	{`\supseteq`, "⊇"},
	{`\supset`, "⊃"},
	{`\cup`, "∪"},
	{`\cap`, "∩"},
	{`\emptyset`, "∅"},
	{`\forall`, "∀"},
	{`\exists`, "∃"},
	{`\sum`, "∑"},
	{`\prod`, "∏"},
	{`\partial`, "∂"},
	{`\nabla`, "∇"},
	{`\degree`, "°"},
	{`\angle`, "∠"},
	{`\perp`, "⊥"},
	{`\parallel`, "∥"},
	{`\land`, "∧"},
	{`\lor`, "∨"},
}

var extraMacros = Table{
	{`\langle`, "⟨"},
	{`\rangle`, "⟩"},
	{`\lceil`, "⌈"},
	{`\rceil`, "⌉"},
	{`\lfloor`, "⌊"},
	{`\rfloor`, "⌋"},
	{`\aleph`, "ℵ"},
	{`\hbar`, "ℏ"},
	{`\ell`, "ℓ"},
	{`\Re`, "ℜ"},
	{`\Im`, "ℑ"},
	{`\wp`, "℘"},
	{`\mho`, "℧"},
	{`\oplus`, "⊕"},
	{`\otimes`, "⊗"},
	{`\odot`, "⊙"},
	{`\circ`, "∘"},
	{`\bullet`, "∙"},
	{`\star`, "⋆"},
	{`\ast`, "∗"},
	{`\wedge`, "∧"},
	{`\vee`, "∨"},
	{`\oint`, "∮"},
	{`\iint`, "∬"},
	{`\iiint`, "∭"},
	{`\surd`, "√"},
	{`\uparrow`, "↑"},
	{`\downarrow`, "↓"},
	{`\updownarrow`, "↕"},
	{`\Uparrow`, "⇑"},
	{`\Downarrow`, "⇓"},
	{`\searrow`, "↘"},
	{`\swarrow`, "↙"},
	{`\nwarrow`, "↖"},
	{`\longrightarrow`, "⟶"},
	{`\longleftarrow`, "⟵"},
	{`\hookrightarrow`, "↪"},
	{`\therefore`, "∴"},
	{`\because`, "∵"},
	{`\cong`, "≅"},
	{`\ll`, "≪"},
	{`\gg`, "≫"},
	{`\prec`, "≺"},
	{`\succ`, "≻"},
	{`\models`, "⊨"},
	{`\vdash`, "⊢"},
	{`\dashv`, "⊣"},
	{`\mid`, "∣"},
	{`\nmid`, "∤"},
	{`\setminus`, "∖"},
	{`\complement`, "∁"},
	{`\varnothing`, "∅"},
	{`\triangle`, "△"},
	{`\square`, "□"},
	{`\diamond`, "◇"},
	{`\sharp`, "♯"},
	{`\flat`, "♭"},
	{`\dagger`, "†"},
	{`\ddagger`, "‡"},
	{`\prime`, "′"},
	{`\checkmark`, "✓"},
}

// FullMacros is every macro the expander knows: the main set, the Greek
// letters and the rest.
var FullMacros = concat(MainMacros, Greek, extraMacros)

// Operators rewrites ASCII operator spellings. Longer spellings come first
// so that "<=>" is not split into "<=" and ">".
var Operators = Table{
	{"<=>", "⇔"},
	{"<->", "↔"},
	{"=>", "⇒"},
	{"->", "→"},
	{"<=", "≤"},
	{">=", "≥"},
	{"<-", "←"},
	{"!=", "≠"},
	{"+-", "±"},
	{"-+", "∓"},
	{"~~", "≈"},
	{"~=", "≅"},
	{"...", "…"},
}

// RootConsts are the names accepted in call form, name(N).
var RootConsts = Table{
	{"sqrt", "√"},
	{"cbrt", "∛"},
	{"qrt", "∜"},
	{"pi", "π"},
	{"tau", "τ"},
}

// Functions normalizes function names to their canonical spelling.
var Functions = []FunctionRule{
	{`\barcsin\b`, "arcsin"},
	{`\barccos\b`, "arccos"},
	{`\barctan\b`, "arctg"},
	{`\barctg\b`, "arctg"},
	{`\barccot\b`, "arcctg"},
	{`\barcctg\b`, "arcctg"},
	{`\bsinh\b`, "sinh"},
	{`\bcosh\b`, "cosh"},
	{`\btanh\b`, "tanh"},
	{`\bsin\b`, "sin"},
	{`\bcos\b`, "cos"},
	{`\btan\b`, "tg"},
	{`\btg\b`, "tg"},
	{`\bcot\b`, "ctg"},
	{`\bctg\b`, "ctg"},
	{`\bsec\b`, "sec"},
	{`\bcosec\b`, "cosec"},
	{`\bcsc\b`, "csc"},
	{`\blog\b`, "log"},
	{`\blg\b`, "lg"},
	{`\bln\b`, "ln"},
	{`\bexp\b`, "exp"},
	{`\blim\b`, "lim"},
	{`\bmax\b`, "max"},
	{`\bmin\b`, "min"},
	{`\bsgn\b`, "sgn"},
	{`\bdet\b`, "det"},
}

// Constants maps constant names to their symbols. Names match
// case-insensitively anywhere in the text, so 2pi becomes 2π; a name must
// come before any name it is a substring of.
var Constants = Table{
	{"infinity", "∞"},
	{"inf", "∞"},
	{"pi", "π"},
	{"tau", "τ"},
	{"phi", "φ"},
	{"hbar", "ℏ"},
}
