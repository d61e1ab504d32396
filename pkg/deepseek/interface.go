package deepseek

import "context"

// IDeepSeek is satisfied by *Client and by test doubles in llmprovider.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
