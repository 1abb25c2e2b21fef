package packet

// The full opcode table. Gaps are opcodes the client never sends or
// handles; they decode as Unknown.
const (
	OpLoginAuth          Op = 1
	OpLoginAuthResult    Op = 2
	OpServerListRequest  Op = 3
	OpServerInfo         Op = 4
	OpServerListEnd      Op = 5
	OpGameAuth           Op = 6
	OpGameAuthResult     Op = 7
	OpChangeModeRequest  Op = 8
	OpChangeModeResult   Op = 9
	OpLobbyCountRequest  Op = 10
	OpLobbyCount         Op = 11
	OpLobbyDataRequest   Op = 12
	OpLobbyData          Op = 13
	OpEnterLobbyRequest  Op = 14
	OpEnterLobbyResult   Op = 15
	OpMakeRoomRequest    Op = 16
	OpMakeRoomResult     Op = 17
	OpRoomListRequest    Op = 18
	OpRoomInfo           Op = 19
	OpEnterRoomRequest   Op = 20
	OpEnterRoomResult    Op = 21
	OpRoomUsersRequest   Op = 22
	OpRoomUser           Op = 23
	OpExitRoomRequest    Op = 24
	OpExitRoomResult     Op = 25
	OpUserStat           Op = 26
	OpChatMessage        Op = 27
	OpUpdateRoomRequest  Op = 28
	OpUpdateRoomResult   Op = 29
	OpRoomStatUpdate     Op = 30
	OpGameStartRequest   Op = 31
	OpGameStart          Op = 32
	OpClubChange         Op = 33
	OpClubChangeRelay    Op = 34
	OpDirection          Op = 35
	OpDirectionRelay     Op = 36
	OpShot               Op = 37
	OpShotRelay          Op = 38
	OpScoreReport        Op = 39
	OpUserRecordRequest  Op = 40
	OpUserRecord         Op = 41
	OpCourseRecordReq    Op = 42
	OpCourseRecord       Op = 43
	OpLoadStat           Op = 44
	OpLoadStatRelay      Op = 45
	OpBallPos            Op = 46
	OpBallPosRelay       Op = 47
	OpHoleOut            Op = 48
	OpHoleOutRelay       Op = 49
	OpRankEnterRequest   Op = 50
	OpRankEnterResult    Op = 51
	OpRankLeaveRequest   Op = 52
	OpRankLeaveResult    Op = 53
	OpRankJump           Op = 54
	OpRankJumpDone       Op = 55
	OpRankStartRequest   Op = 56
	OpRankData           Op = 57
	OpUserInfoRequest    Op = 65
	OpUserInfo           Op = 66
	OpFindUserRequest    Op = 67
	OpFindUserResult     Op = 68
	OpFriendAddRequest   Op = 69
	OpFriendAddResult    Op = 70
	OpFriendsRequest     Op = 71
	OpFriends            Op = 72
	OpFriendsInRequest   Op = 73
	OpFriendsIn          Op = 74
	OpFriendsOutRequest  Op = 75
	OpFriendsOut         Op = 76
	OpFriendAnswer       Op = 77
	OpFriendAnswerResult Op = 78
	OpFriendRemove       Op = 79
	OpFriendRemoveResult Op = 80
	OpFriendCancel       Op = 81
	OpFriendCancelResult Op = 82
	OpAppearanceRequest  Op = 83
	OpAppearance         Op = 84
	OpCharPos            Op = 85
	OpCharPosRelay       Op = 86
	OpLobbyUsersRequest  Op = 87
	OpLobbyUser          Op = 88
	OpSellListRequest    Op = 89
	OpSellList           Op = 90
	OpBuyItemRequest     Op = 91
	OpBuyItemResult      Op = 92
	OpMoneyRequest       Op = 93
	OpMoney              Op = 94
	OpFirstCharRequest   Op = 95
	OpFirstCharResult    Op = 96
	OpCharUIDsByUID      Op = 97
	OpCharUIDsRequest    Op = 98
	OpCharUIDs           Op = 99
	OpCharDataRequest    Op = 100
	OpCharData           Op = 101
	OpAllCharDataRequest Op = 102
	OpChangeAppearanceRq Op = 103
	OpChangeAppearance   Op = 104
	OpSetNameRequest     Op = 105
	OpSetNameResult      Op = 106
	OpCourseBestsRequest Op = 107
	OpCourseBests        Op = 108
	OpMailCountRequest   Op = 109
	OpMailCount          Op = 110
	OpMailListRequest    Op = 111
	OpMailList           Op = 112
	OpMailRequest        Op = 113
	OpMail               Op = 114
	OpMailSend           Op = 115
	OpMailSendResult     Op = 116
	OpBlockListRequest   Op = 117
	OpBlockList          Op = 118
	OpBlockAdd           Op = 119
	OpBlockAddResult     Op = 120
	OpBlockRemove        Op = 121
	OpBlockRemoveResult  Op = 122
	OpSearchUserRequest  Op = 123
	OpSearchUserResult   Op = 124
	OpStatBroadcast      Op = 125
	OpCupIn              Op = 126
	OpItemDrop           Op = 127
	OpClock              Op = 128
	OpSearchRoomRequest  Op = 129
	OpSearchRoomResult   Op = 130
	OpInventoryRequest   Op = 131
	OpInventory          Op = 132
	OpGolfbagRequest     Op = 133
	OpGolfbag            Op = 134
	OpCommand            Op = 135
	OpCommandRelay       Op = 136
	OpCurrentCharRequest Op = 137
	OpChangeCharRequest  Op = 138
	OpCurrentChar        Op = 139
	OpGrowParam          Op = 140
	OpGrowParamRequest   Op = 141
	OpCharParamRequest   Op = 145
	OpCharParamResult    Op = 146
	OpCaddieListRequest  Op = 147
	OpCaddieList         Op = 148
	OpDeliveriesRequest  Op = 149
	OpDelivery           Op = 150
	OpEmployCaddieReq    Op = 151
	OpEmployCaddieResult Op = 152
	OpCaddieDataRequest  Op = 153
	OpCaddieData         Op = 154
	OpUseItemRequest     Op = 155
	OpUseItemResult      Op = 156
	OpUseItemRelay       Op = 157
	OpDeliverySend       Op = 158
	OpDeliverySendResult Op = 159
	OpDeliveryAnswer     Op = 160
	OpDeliveryAnswerRes  Op = 161
	OpMacrosRequest      Op = 162
	OpMacro              Op = 163
	OpMacroSet           Op = 164
	OpMacroSetResult     Op = 165
	OpSalonListRequest   Op = 166
	OpSalonList          Op = 167
	OpBuySalonRequest    Op = 168
	OpBuySalonResult     Op = 169
	OpTitlesRequest      Op = 170
	OpTitles             Op = 171
	OpGetTitleRequest    Op = 172
	OpGetTitleResult     Op = 173
	OpChangeTitleReq     Op = 174
	OpChangeTitleResult  Op = 175
	OpTelop              Op = 176
	OpTelopRelay         Op = 177
	OpCompeResults       Op = 178
	OpCompeResultsReq    Op = 179
	OpUserDataRequest    Op = 180
	OpUserData           Op = 181
	OpRankingRequest     Op = 182
	OpRanking            Op = 183
	OpLoadStat2          Op = 185
	OpLoadStat2Relay     Op = 186
	OpGameStartResult    Op = 187
	OpHoldboxRequest     Op = 189
	OpHoldboxResult      Op = 190
	OpDropItems          Op = 191
	OpGameCenterRequest  Op = 192
	OpDeliveryBoxCount   Op = 193
	OpCommand2           Op = 194
	OpCommand2Relay      Op = 195
	OpBuyByTicketReq     Op = 196
	OpBuyByTicketResult  Op = 197
	OpUFOPlayRequest     Op = 198
	OpUFOPlayResult      Op = 199
	OpCaddieByTicketReq  Op = 200
	OpCaddieByTicketRes  Op = 201
	OpSalonByTicketReq   Op = 202
	OpSalonByTicketRes   Op = 203
	OpNPRequest          Op = 204
	OpNP                 Op = 205
	OpAddNPResult        Op = 207
	OpBuyByNPRequest     Op = 208
	OpBuyByNPResult      Op = 209
	OpRankOpponent       Op = 210
	OpSetTeamRequest     Op = 211
	OpSetTeamRelay       Op = 212
	OpSlotsPlayRequest   Op = 213
	OpSlotsPlayResult    Op = 214
	OpQuickItemOn        Op = 215
	OpOwnerChangeReq     Op = 216
	OpOwnerChangeAnswer  Op = 217
	OpOwnerChange        Op = 218
	OpKickRequest        Op = 219
	OpKickResult         Op = 220
	OpKicked             Op = 221
	OpCaddieByItemReq    Op = 222
	OpCaddieByItemRes    Op = 223
	OpCaddieChangeRelay  Op = 224
	OpTitleChangeRelay   Op = 225
	OpUserDataChange     Op = 226
	OpGCPlaysRequest     Op = 227
	OpGCPlays            Op = 228
	OpClockPing          Op = 229
	OpClockPong          Op = 230
	OpEnabledCaddies     Op = 231
	OpGameOptions        Op = 232
	OpUDataFlagResult    Op = 233
	OpStopBallPos        Op = 234
	OpStopBallPosRelay   Op = 235
	OpColorResult        Op = 236
	OpMPTable            Op = 237
	OpAddGPRequest       Op = 238
	OpAddGPResult        Op = 239
	OpRoomRefreshRequest Op = 240
	OpUseCarryItem       Op = 241
	OpUseHoldItemResult  Op = 242
	OpReturnLoungeReq    Op = 246
	OpReturnLoungeAll    Op = 247
	OpPing               Op = 250
	OpPong               Op = 251
	OpCompeItems         Op = 256
	OpRecycleInfoRequest Op = 263
	OpRecycleInfo        Op = 264
	OpRecycleOpen        Op = 265
	OpRecycleRequest     Op = 266
	OpRecycleResult      Op = 267
	OpModeCtrlRequest    Op = 268
	OpModeCtrl           Op = 269
	OpRedeemCodeRequest  Op = 270
	OpRedeemCodeResult   Op = 271
	OpCheckCodeRequest   Op = 272
	OpCheckCodeResult    Op = 273
	OpSingleItemsRequest Op = 274
	OpSingleItems        Op = 275
	OpTrashItemsRequest  Op = 276
	OpTrashItemsResult   Op = 277
	OpInviteRequest      Op = 279
	OpInvite             Op = 280
	OpDeliveryNotice     Op = 281
	OpAuthChallenge      Op = 282
	OpAuthResponse       Op = 283
	OpRetire             Op = 286
	OpRankingCount       Op = 302
	OpTelopText          Op = 304
	OpRoomUsersEnd       Op = 307
	OpSVItemDataRequest  Op = 308
	OpSVItemData         Op = 309
	OpSVItemDataEnd      Op = 310
	OpClubDataRequest    Op = 311
	OpClubData           Op = 312
	OpClubDataEnd        Op = 313
	OpDebugMessage       Op = 316
)
