package api

import (
	"context"

	"google.golang.org/grpc"
)

const (
	EmailServiceName = "emails.v1.EmailService"

	EmailService_Create_FullMethodName = "/emails.v1.EmailService/Create"
	EmailService_List_FullMethodName   = "/emails.v1.EmailService/List"
	EmailService_Show_FullMethodName   = "/emails.v1.EmailService/Show"
	EmailService_Delete_FullMethodName = "/emails.v1.EmailService/Delete"
)

type Participant struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

// Email is the wire form of a stored email. Date is RFC 3339 in UTC.
type Email struct {
	ID      string        `json:"id"`
	From    []Participant `json:"from"`
	To      []Participant `json:"to"`
	Date    string        `json:"date"`
	Subject string        `json:"subject"`
	Content string        `json:"content"`
	Read    bool          `json:"read"`
}

// CreateEmailRequest has no id nor read field, both are decided by the store.
type CreateEmailRequest struct {
	From    []Participant `json:"from"`
	To      []Participant `json:"to"`
	Date    string        `json:"date"`
	Subject string        `json:"subject"`
	Content string        `json:"content"`
}

type CreateEmailResponse struct {
	Email Email `json:"email"`
}

type ListEmailsRequest struct {
	PersonaID string `json:"persona_id"`
}

type ListEmailsResponse struct {
	Emails []Email `json:"emails"`
}

type ShowEmailRequest struct {
	ID string `json:"id"`
}

type ShowEmailResponse struct {
	Email Email `json:"email"`
}

type DeleteEmailRequest struct {
	ID string `json:"id"`
}

type DeleteEmailResponse struct{}

type EmailServiceClient interface {
	Create(ctx context.Context, in *CreateEmailRequest, opts ...grpc.CallOption) (*CreateEmailResponse, error)
	List(ctx context.Context, in *ListEmailsRequest, opts ...grpc.CallOption) (*ListEmailsResponse, error)
	Show(ctx context.Context, in *ShowEmailRequest, opts ...grpc.CallOption) (*ShowEmailResponse, error)
	Delete(ctx context.Context, in *DeleteEmailRequest, opts ...grpc.CallOption) (*DeleteEmailResponse, error)
}

type emailServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEmailServiceClient(cc grpc.ClientConnInterface) EmailServiceClient {
	return &emailServiceClient{cc}
}

func (c *emailServiceClient) Create(ctx context.Context, in *CreateEmailRequest, opts ...grpc.CallOption) (*CreateEmailResponse, error) {
	out := new(CreateEmailResponse)
	if err := c.cc.Invoke(ctx, EmailService_Create_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *emailServiceClient) List(ctx context.Context, in *ListEmailsRequest, opts ...grpc.CallOption) (*ListEmailsResponse, error) {
	out := new(ListEmailsResponse)
	if err := c.cc.Invoke(ctx, EmailService_List_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *emailServiceClient) Show(ctx context.Context, in *ShowEmailRequest, opts ...grpc.CallOption) (*ShowEmailResponse, error) {
	out := new(ShowEmailResponse)
	if err := c.cc.Invoke(ctx, EmailService_Show_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *emailServiceClient) Delete(ctx context.Context, in *DeleteEmailRequest, opts ...grpc.CallOption) (*DeleteEmailResponse, error) {
	out := new(DeleteEmailResponse)
	if err := c.cc.Invoke(ctx, EmailService_Delete_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type EmailServiceServer interface {
	Create(context.Context, *CreateEmailRequest) (*CreateEmailResponse, error)
	List(context.Context, *ListEmailsRequest) (*ListEmailsResponse, error)
	Show(context.Context, *ShowEmailRequest) (*ShowEmailResponse, error)
	Delete(context.Context, *DeleteEmailRequest) (*DeleteEmailResponse, error)
}

func RegisterEmailServiceServer(s grpc.ServiceRegistrar, srv EmailServiceServer) {
	s.RegisterService(&EmailService_ServiceDesc, srv)
}

var EmailService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: EmailServiceName,
	HandlerType: (*EmailServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: unary(EmailService_Create_FullMethodName, EmailServiceServer.Create)},
		{MethodName: "List", Handler: unary(EmailService_List_FullMethodName, EmailServiceServer.List)},
		{MethodName: "Show", Handler: unary(EmailService_Show_FullMethodName, EmailServiceServer.Show)},
		{MethodName: "Delete", Handler: unary(EmailService_Delete_FullMethodName, EmailServiceServer.Delete)},
	},
	Streams: []grpc.StreamDesc{},
}
