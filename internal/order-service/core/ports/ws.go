package ports

import websocketdto "fuelgo/internal/order-service/core/domain/websocket_dto"

type INotifyWebsocket interface {
	WriteToUser(userID string, msg websocketdto.Event)
}
