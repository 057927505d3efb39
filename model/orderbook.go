package model

import "github.com/lemconn/krakenlink/types"

// OrderBookEntry 订单簿条目，交易所以 [price, volume, timestamp] 数组返回
type OrderBookEntry struct {
	// Price 价格
	Price types.ExDecimal `json:"price"`
	// Quantity 数量
	Quantity types.ExDecimal `json:"quantity"`
	// Timestamp 最后更新时间
	Timestamp types.ExTimestamp `json:"timestamp"`
}

// UnmarshalJSON 自定义 JSON 反序列化
func (e *OrderBookEntry) UnmarshalJSON(data []byte) error {
	arr, err := decodeArray(data, 3, "order book entry")
	if err != nil {
		return err
	}
	if e.Price, err = decodeDecimal(arr[0], "price"); err != nil {
		return err
	}
	if e.Quantity, err = decodeDecimal(arr[1], "quantity"); err != nil {
		return err
	}
	if e.Timestamp, err = decodeTimestamp(arr[2], "timestamp"); err != nil {
		return err
	}
	return nil
}

// OrderBook 订单簿
type OrderBook struct {
	// Asks 卖单列表（价格从低到高）
	Asks []OrderBookEntry `json:"asks"`
	// Bids 买单列表（价格从高到低）
	Bids []OrderBookEntry `json:"bids"`
}

// BestBid 最优买价，订单簿为空时返回 false
func (b *OrderBook) BestBid() (OrderBookEntry, bool) {
	if len(b.Bids) == 0 {
		return OrderBookEntry{}, false
	}
	return b.Bids[0], true
}

// BestAsk 最优卖价，订单簿为空时返回 false
func (b *OrderBook) BestAsk() (OrderBookEntry, bool) {
	if len(b.Asks) == 0 {
		return OrderBookEntry{}, false
	}
	return b.Asks[0], true
}
