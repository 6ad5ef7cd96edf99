package provider

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}
