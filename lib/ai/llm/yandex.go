package llm

import (
	"context"

	"github.com/pkg/errors"
	yandexgptclient "github.com/sheeiavellie/go-yandexgpt"
)

type yandexImpl struct {
	client    *yandexgptclient.YandexGPTClient
	catalogID string
}

func NewYandexClient(token, catalog string) Provider {
	return yandexImpl{
		client:    yandexgptclient.NewYandexGPTClientWithIAMToken(token),
		catalogID: catalog,
	}
}

func (i yandexImpl) ModelName() string {
	return "yandexgpt-lite"
}

func (i yandexImpl) Generate(ctx context.Context, instruction, text string) (generated string, err error) {
	request := yandexgptclient.YandexGPTRequest{
		ModelURI: yandexgptclient.MakeModelURI(i.catalogID, yandexgptclient.YandexGPTModelLite),
		CompletionOptions: yandexgptclient.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: 0.3,
			MaxTokens:   2000,
		},
		Messages: []yandexgptclient.YandexGPTMessage{
			{
				Role: yandexgptclient.YandexGPTMessageRoleSystem,
				Text: instruction,
			},
			{
				Role: yandexgptclient.YandexGPTMessageRoleUser,
				Text: text,
			},
		},
	}

	response, err := i.client.CreateRequest(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "YandexGPT request failed")
	}
	if len(response.Result.Alternatives) == 0 {
		return "", errors.New("YandexGPT returned no alternatives")
	}
	return response.Result.Alternatives[0].Message.Text, nil
}
