package platformdomain

import "errors"

// Classes de falha do adaptador. Cada uma precisa chegar à camada de
// apresentação como uma mensagem distinta, nunca derrubar o processo.
var (
	// ErrMissingAPIKey indica chave de API ausente na configuração.
	ErrMissingAPIKey = errors.New("chave da API da plataforma não configurada")

	// ErrUnreachable indica falha de transporte: rede indisponível ou
	// resposta com status não-2xx.
	ErrUnreachable = errors.New("falha de comunicação com a API da plataforma")

	// ErrMalformedPayload indica corpo de resposta que não decodifica na
	// forma esperada do snapshot.
	ErrMalformedPayload = errors.New("resposta da API da plataforma em formato inválido")
)
