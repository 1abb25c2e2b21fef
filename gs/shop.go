package gs

import (
	"go.uber.org/zap"

	"splashsrv/data"
	"splashsrv/packet"
	"splashsrv/shop"
)

// tryBuy validates a purchase against a catalog and applies it to the
// player's wallet and inventory.
func (st *state) tryBuy(p *player, catalog []data.SellItem, request data.CountedItem) packet.BuyResult {
	item := request.Item()
	count := request.Count()

	entry, ok := shop.Find(catalog, item)
	if !ok {
		return packet.BuyInvalidType
	}

	max := item.Category().MaxStack()
	if count == 0 || count > max {
		return packet.BuyInvalidCount
	}
	if p.user.ItemAmount(item)+count > max {
		return packet.BuyInvalidCount
	}

	cost := int32(entry.Price) * int32(count)
	if !p.user.CheckBalance(entry.Currency, cost) {
		return packet.BuyBalance
	}

	p.user.AdjustBalance(entry.Currency, -cost)
	if err := p.user.AddItem(request); err != nil {
		st.log.Error("inventory add failed after payment",
			zap.Int32("cid", p.cid), zap.Uint32("item", uint32(item)), zap.Error(err))
		return packet.BuyErr
	}
	return packet.BuyOK
}

func (st *state) handleBuyItem(p *player, request data.CountedItem) {
	result := st.tryBuy(p, st.shopItems, request)
	st.send(p, packet.BuyItemResult{Result: result})
	st.send(p, packet.Money{GP: p.user.GP, SC: p.user.SC})
	st.saveUser(p)
}

func (st *state) handleBuySalon(p *player, request data.CountedItem) {
	result := st.tryBuy(p, st.salonItems, request)
	st.send(p, packet.BuySalonResult{Result: result})
	st.send(p, packet.Money{GP: p.user.GP, SC: p.user.SC})
	st.saveUser(p)
}
