package dom

// Per-tag builder functions over CreateElement. Names that collide with
// Go keywords or other identifiers in this package carry a trailing
// underscore, following the usual DSL convention.

// Document structure elements

func Html(content ...any) *Node  { return CreateElement("html", content...) }
func Head(content ...any) *Node  { return CreateElement("head", content...) }
func Body(content ...any) *Node  { return CreateElement("body", content...) }
func Title(content ...any) *Node { return CreateElement("title", content...) }
func Meta(content ...any) *Node  { return CreateElement("meta", content...) }
func Link(content ...any) *Node  { return CreateElement("link", content...) }
func Base(content ...any) *Node  { return CreateElement("base", content...) }

// Content sectioning elements

func Header(content ...any) *Node  { return CreateElement("header", content...) }
func Footer(content ...any) *Node  { return CreateElement("footer", content...) }
func Main(content ...any) *Node    { return CreateElement("main", content...) }
func Nav(content ...any) *Node     { return CreateElement("nav", content...) }
func Section(content ...any) *Node { return CreateElement("section", content...) }
func Article(content ...any) *Node { return CreateElement("article", content...) }
func Aside(content ...any) *Node   { return CreateElement("aside", content...) }
func H1(content ...any) *Node      { return CreateElement("h1", content...) }
func H2(content ...any) *Node      { return CreateElement("h2", content...) }
func H3(content ...any) *Node      { return CreateElement("h3", content...) }
func H4(content ...any) *Node      { return CreateElement("h4", content...) }
func H5(content ...any) *Node      { return CreateElement("h5", content...) }
func H6(content ...any) *Node      { return CreateElement("h6", content...) }

// Text content elements

func Div(content ...any) *Node        { return CreateElement("div", content...) }
func P(content ...any) *Node          { return CreateElement("p", content...) }
func Span(content ...any) *Node       { return CreateElement("span", content...) }
func Pre(content ...any) *Node        { return CreateElement("pre", content...) }
func Blockquote(content ...any) *Node { return CreateElement("blockquote", content...) }
func Ul(content ...any) *Node         { return CreateElement("ul", content...) }
func Ol(content ...any) *Node         { return CreateElement("ol", content...) }
func Li(content ...any) *Node         { return CreateElement("li", content...) }
func Dl(content ...any) *Node         { return CreateElement("dl", content...) }
func Dt(content ...any) *Node         { return CreateElement("dt", content...) }
func Dd(content ...any) *Node         { return CreateElement("dd", content...) }
func Hr(content ...any) *Node         { return CreateElement("hr", content...) }
func Figure(content ...any) *Node     { return CreateElement("figure", content...) }
func Figcaption(content ...any) *Node { return CreateElement("figcaption", content...) }

// Inline text semantics

func A(content ...any) *Node      { return CreateElement("a", content...) }
func Strong(content ...any) *Node { return CreateElement("strong", content...) }
func Em(content ...any) *Node     { return CreateElement("em", content...) }
func B(content ...any) *Node      { return CreateElement("b", content...) }
func I(content ...any) *Node      { return CreateElement("i", content...) }
func U(content ...any) *Node      { return CreateElement("u", content...) }
func Small(content ...any) *Node  { return CreateElement("small", content...) }
func Mark(content ...any) *Node   { return CreateElement("mark", content...) }
func Sub(content ...any) *Node    { return CreateElement("sub", content...) }
func Sup(content ...any) *Node    { return CreateElement("sup", content...) }
func Code(content ...any) *Node   { return CreateElement("code", content...) }
func Kbd(content ...any) *Node    { return CreateElement("kbd", content...) }
func Samp(content ...any) *Node   { return CreateElement("samp", content...) }
func Abbr(content ...any) *Node   { return CreateElement("abbr", content...) }
func Time_(content ...any) *Node  { return CreateElement("time", content...) }
func Cite(content ...any) *Node   { return CreateElement("cite", content...) }
func Q(content ...any) *Node      { return CreateElement("q", content...) }
func Br(content ...any) *Node     { return CreateElement("br", content...) }
func Wbr(content ...any) *Node    { return CreateElement("wbr", content...) }

// Form elements

func Form(content ...any) *Node     { return CreateElement("form", content...) }
func Input(content ...any) *Node    { return CreateElement("input", content...) }
func Textarea(content ...any) *Node { return CreateElement("textarea", content...) }
func Select(content ...any) *Node   { return CreateElement("select", content...) }
func Option(content ...any) *Node   { return CreateElement("option", content...) }
func Optgroup(content ...any) *Node { return CreateElement("optgroup", content...) }
func Button(content ...any) *Node   { return CreateElement("button", content...) }
func Label(content ...any) *Node    { return CreateElement("label", content...) }
func Fieldset(content ...any) *Node { return CreateElement("fieldset", content...) }
func Legend(content ...any) *Node   { return CreateElement("legend", content...) }
func Datalist(content ...any) *Node { return CreateElement("datalist", content...) }
func Output(content ...any) *Node   { return CreateElement("output", content...) }
func Progress(content ...any) *Node { return CreateElement("progress", content...) }
func Meter(content ...any) *Node    { return CreateElement("meter", content...) }

// Table elements

func Table(content ...any) *Node    { return CreateElement("table", content...) }
func Thead(content ...any) *Node    { return CreateElement("thead", content...) }
func Tbody(content ...any) *Node    { return CreateElement("tbody", content...) }
func Tfoot(content ...any) *Node    { return CreateElement("tfoot", content...) }
func Tr(content ...any) *Node       { return CreateElement("tr", content...) }
func Th(content ...any) *Node       { return CreateElement("th", content...) }
func Td(content ...any) *Node       { return CreateElement("td", content...) }
func Caption(content ...any) *Node  { return CreateElement("caption", content...) }
func Colgroup(content ...any) *Node { return CreateElement("colgroup", content...) }
func Col(content ...any) *Node      { return CreateElement("col", content...) }

// Media elements

func Img(content ...any) *Node    { return CreateElement("img", content...) }
func Source(content ...any) *Node { return CreateElement("source", content...) }
func Video(content ...any) *Node  { return CreateElement("video", content...) }
func Audio(content ...any) *Node  { return CreateElement("audio", content...) }
func Track(content ...any) *Node  { return CreateElement("track", content...) }
func Iframe(content ...any) *Node { return CreateElement("iframe", content...) }
func Embed(content ...any) *Node  { return CreateElement("embed", content...) }
func Object(content ...any) *Node { return CreateElement("object", content...) }
func Param(content ...any) *Node  { return CreateElement("param", content...) }
func Canvas(content ...any) *Node { return CreateElement("canvas", content...) }
func Area(content ...any) *Node   { return CreateElement("area", content...) }
func Map_(content ...any) *Node   { return CreateElement("map", content...) }

// Interactive and scripting elements

func Details(content ...any) *Node  { return CreateElement("details", content...) }
func Summary(content ...any) *Node  { return CreateElement("summary", content...) }
func Dialog(content ...any) *Node   { return CreateElement("dialog", content...) }
func Menu(content ...any) *Node     { return CreateElement("menu", content...) }
func Script(content ...any) *Node   { return CreateElement("script", content...) }
func Noscript(content ...any) *Node { return CreateElement("noscript", content...) }
func Template(content ...any) *Node { return CreateElement("template", content...) }
func Style(content ...any) *Node    { return CreateElement("style", content...) }
