package markup

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "scribe-tags"

// LSPServer checks tag table files as they are edited and describes tags
// on hover.
type LSPServer struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu   sync.Mutex
	docs map[protocol.DocumentUri]string
}

func NewLSPServer(version string) *LSPServer {
	ls := &LSPServer{
		version: version,
		docs:    make(map[protocol.DocumentUri]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
		TextDocumentHover:     ls.textDocumentHover,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKind(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("tag table server ready")
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.update(ctx, params.TextDocument.URI, textChange.Text)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	ls.mu.Lock()
	text, ok := ls.docs[params.TextDocument.URI]
	ls.mu.Unlock()
	if !ok {
		return nil, nil
	}

	value := Hover(params.TextDocument.URI, text, int(params.Position.Line), int(params.Position.Character))
	if value == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: value,
		},
	}, nil
}

func (ls *LSPServer) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	ls.docs[uri] = text
	ls.mu.Unlock()

	diagnostics := Diagnose(uri, text)
	log.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// Diagnose parses and validates the table in text. Documents that are not
// tag tables get no diagnostics.
func Diagnose(uri, text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	path, err := uriToPath(uri)
	if err != nil {
		return diagnostics
	}
	format, err := FormatFor(path)
	if err != nil {
		return diagnostics
	}

	t, err := Parse([]byte(text), format)
	if err != nil {
		return append(diagnostics, diagnostic(errorLine(err), err.Error()))
	}

	var te *TableError
	if err := t.Validate(); errors.As(err, &te) {
		for _, p := range te.Problems {
			diagnostics = append(diagnostics, diagnostic(locate(text, p.Tag), p.String()))
		}
	}
	return diagnostics
}

// Hover describes the tag whose name is under the given position.
func Hover(uri, text string, line, character int) string {
	path, err := uriToPath(uri)
	if err != nil {
		return ""
	}
	format, err := FormatFor(path)
	if err != nil {
		return ""
	}
	t, err := Parse([]byte(text), format)
	if err != nil {
		return ""
	}
	word := wordAt(text, line, character)
	tag, ok := t.Lookup(word)
	if !ok {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**<%s>** builds as `%s`\n", tag.Name, ClassName(tag.Name))
	if tag.Void {
		sb.WriteString("\nvoid element\n")
	} else if children := t.Closure()[tag.Name]; len(children) > 0 {
		fmt.Fprintf(&sb, "\nchildren: %s\n", strings.Join(children, ", "))
	}
	if attrs := t.AttributesOf(tag); len(attrs) > 0 {
		fmt.Fprintf(&sb, "\nattributes: %s\n", strings.Join(attrs, ", "))
	}
	return sb.String()
}

func diagnostic(line int, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	pos := protocol.Position{Line: protocol.UInteger(line)}
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: pos, End: pos},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

var lineInMessage = regexp.MustCompile(`line (\d+)`)

// errorLine returns the zero-based line a parse error points at.
func errorLine(err error) int {
	var pe toml.ParseError
	if errors.As(err, &pe) && pe.Position.Line > 0 {
		return pe.Position.Line - 1
	}
	if m := lineInMessage.FindStringSubmatch(err.Error()); m != nil {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil && n > 0 {
			return n - 1
		}
	}
	return 0
}

// locate returns the zero-based line declaring tag, or 0.
func locate(text, tag string) int {
	if tag == "" {
		return 0
	}
	re := regexp.MustCompile(`^\s*(-\s*)?name\s*[=:]\s*["']?` + regexp.QuoteMeta(tag) + `["']?\s*$`)
	for i, l := range strings.Split(text, "\n") {
		if re.MatchString(strings.TrimRight(l, "\r")) {
			return i
		}
	}
	return 0
}

func wordAt(text string, line, character int) string {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	l := lines[line]
	if character < 0 || character > len(l) {
		return ""
	}
	isWord := func(c byte) bool {
		return c == '-' || c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	start, end := character, character
	for start > 0 && isWord(l[start-1]) {
		start--
	}
	for end < len(l) && isWord(l[end]) {
		end++
	}
	return l[start:end]
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
