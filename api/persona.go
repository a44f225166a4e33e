package api

import (
	"context"

	"google.golang.org/grpc"
)

const (
	PersonaServiceName = "personas.v1.PersonaService"

	PersonaService_Show_FullMethodName        = "/personas.v1.PersonaService/Show"
	PersonaService_FindByEmail_FullMethodName = "/personas.v1.PersonaService/FindByEmail"
)

type Persona struct {
	ID    string `json:"id"`
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type ShowPersonaRequest struct {
	ID string `json:"id"`
}

type FindPersonaByEmailRequest struct {
	Email string `json:"email"`
}

type PersonaServiceClient interface {
	Show(ctx context.Context, in *ShowPersonaRequest, opts ...grpc.CallOption) (*Persona, error)
	FindByEmail(ctx context.Context, in *FindPersonaByEmailRequest, opts ...grpc.CallOption) (*Persona, error)
}

type personaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPersonaServiceClient(cc grpc.ClientConnInterface) PersonaServiceClient {
	return &personaServiceClient{cc}
}

func (c *personaServiceClient) Show(ctx context.Context, in *ShowPersonaRequest, opts ...grpc.CallOption) (*Persona, error) {
	out := new(Persona)
	if err := c.cc.Invoke(ctx, PersonaService_Show_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *personaServiceClient) FindByEmail(ctx context.Context, in *FindPersonaByEmailRequest, opts ...grpc.CallOption) (*Persona, error) {
	out := new(Persona)
	if err := c.cc.Invoke(ctx, PersonaService_FindByEmail_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

type PersonaServiceServer interface {
	Show(context.Context, *ShowPersonaRequest) (*Persona, error)
	FindByEmail(context.Context, *FindPersonaByEmailRequest) (*Persona, error)
}

func RegisterPersonaServiceServer(s grpc.ServiceRegistrar, srv PersonaServiceServer) {
	s.RegisterService(&PersonaService_ServiceDesc, srv)
}

var PersonaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PersonaServiceName,
	HandlerType: (*PersonaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Show", Handler: unary(PersonaService_Show_FullMethodName, PersonaServiceServer.Show)},
		{MethodName: "FindByEmail", Handler: unary(PersonaService_FindByEmail_FullMethodName, PersonaServiceServer.FindByEmail)},
	},
	Streams: []grpc.StreamDesc{},
}
