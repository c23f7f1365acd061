package usb2phy

func init() {
	RegisterVariants("rockchip,px30-usb2phy", rk3328Variants)
	RegisterVariants("rockchip,rk1808-usb2phy", rk1808Variants)
	RegisterVariants("rockchip,rk3036-usb2phy", rk3036Variants)
	RegisterVariants("rockchip,rk3128-usb2phy", rk312xVariants)
	RegisterVariants("rockchip,rk322x-usb2phy", rk322xVariants)
	RegisterVariants("rockchip,rk3308-usb2phy", rk3308Variants)
	RegisterVariants("rockchip,rk3328-usb2phy", rk3328Variants)
	RegisterVariants("rockchip,rk3368-usb2phy", rk3368Variants)
	RegisterVariants("rockchip,rk3399-usb2phy", rk3399Variants)
	RegisterVariants("rockchip,rk3506-usb2phy", rk3506Variants)
	RegisterVariants("rockchip,rk3528-usb2phy", rk3528Variants)
	RegisterVariants("rockchip,rk3562-usb2phy", rk3562Variants)
	RegisterVariants("rockchip,rk3568-usb2phy", rk3568Variants)
	RegisterVariants("rockchip,rk3576-usb2phy", rk3576Variants)
	RegisterVariants("rockchip,rk3588-usb2phy", rk3588Variants)
	RegisterVariants("rockchip,rv1103b-usb2phy", rv1103bVariants)
	RegisterVariants("rockchip,rv1106-usb2phy", rv1106Variants)
	RegisterVariants("rockchip,rv1108-usb2phy", rv1108Variants)
}
