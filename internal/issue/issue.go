// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"cmp"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PathNotFoundId Id = iota + 1
	PathUnclassifiableId
	DirectoryListFailedId
	FileOpenFailedId
	CodecMissingId
	ContainerFormatId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // Avro documentation pages relevant to the issue
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue as terminal markdown. stylePath is a glamour
// style name ("auto", "dark", "light") or a path to a JSON style file.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n## See also\n"
		for _, link := range i.docLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
		for _, link := range i.extLinks {
			extraMd += "\n- <" + string(link) + ">"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

const (
	ocfSpecLink   HttpLink = "https://avro.apache.org/docs/current/specification/#object-container-files"
	codecSpecLink HttpLink = "https://avro.apache.org/docs/current/specification/#required-codecs"
	goavroLink    HttpLink = "https://github.com/linkedin/goavro"
)

var (
	render = glamour.Render

	pathNotFoundIssue = &Issue{
		id: PathNotFoundId,
		mdMsg: `
# Path not found!

One of the paths given on the command line does not exist, so nothing was validated.

## Things you can try:
- Check the path for typos; arguments are used exactly as given
- Quote paths that contain spaces
- Pass ` + "`-`" + ` (or no arguments at all) to read a single container from standard input:
~~~
$ cat events.avro | avrovalidate
~~~`,
	}

	pathUnclassifiableIssue = &Issue{
		id: PathUnclassifiableId,
		mdMsg: `
# Path is neither a file nor a directory!

The path exists but is a device, socket or named pipe.

## Things you can try:
- Redirect the stream into standard input instead:
~~~
$ avrovalidate - < /path/to/pipe
~~~`,
	}

	directoryListFailedIssue = &Issue{
		id: DirectoryListFailedId,
		mdMsg: `
# Directory could not be listed!

A directory met while walking the arguments could not be read, so the run stopped.

## Things you can try:
- Check the directory permissions (read and execute are both needed)
- Validate the readable sub-directories individually`,
	}

	fileOpenFailedIssue = &Issue{
		id: FileOpenFailedId,
		mdMsg: `
# File could not be opened!

The operating system refused to open one of the files to validate.

## Things you can try:
- Check the file permissions
- Check for dangling symbolic links ending in ` + "`.avro`" + `
- Retry if the file lives on a network filesystem`,
	}

	codecMissingIssue = &Issue{
		id: CodecMissingId,
		mdMsg: `
# Compression codec not available!

The container header names a compression codec this build cannot decode.
Only ` + "`null`, `deflate` and `snappy`" + ` are supported.

## Things you can try:
- Upgrade avrovalidate to a release built with support for the codec
- Rewrite the file with a supported codec, e.g. with avro-tools:
~~~
$ avro-tools recodec --codec snappy in.avro out.avro
~~~`,
		docLinks: []HttpLink{codecSpecLink},
		extLinks: []HttpLink{goavroLink},
	}

	containerFormatIssue = &Issue{
		id: ContainerFormatId,
		mdMsg: `
# Malformed object container!

The file starts like an Avro object container but its header cannot be used,
typically because the embedded ` + "`avro.schema`" + ` is missing or is not a valid schema.

## Things you can try:
- Inspect the header metadata:
~~~
$ avro-tools getmeta file.avro
~~~
- Regenerate the file from its source`,
		docLinks: []HttpLink{ocfSpecLink},
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

Defaults were used instead.

## Things you can try:
- Check the file against the expected layout:
~~~cue
verbosity: 0
ui: {
	color_scheme: "auto"
	explain:      false
}
log: {
	timestamps: false
}
~~~
- Point at another file with ` + "`--config`",
	}

	issues = map[Id]*Issue{
		pathNotFoundIssue.Id():        pathNotFoundIssue,
		pathUnclassifiableIssue.Id():  pathUnclassifiableIssue,
		directoryListFailedIssue.Id(): directoryListFailedIssue,
		fileOpenFailedIssue.Id():      fileOpenFailedIssue,
		codecMissingIssue.Id():        codecMissingIssue,
		containerFormatIssue.Id():     containerFormatIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

// Values returns every catalogued issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		out = append(out, i)
	}
	slices.SortFunc(out, func(a, b *Issue) int { return cmp.Compare(a.id, b.id) })
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
