package entity

// Portal identifies which of the three console front-ends this process serves.
type Portal string

const (
	// PortalPublic is the marketplace front-end for buyers and sellers.
	PortalPublic Portal = "PUBLIC"
	// PortalSeller is the seller back-office.
	PortalSeller Portal = "SELLER"
	// PortalAdmin is the administration back-office.
	PortalAdmin Portal = "ADMIN"
)

// Ports the seller and admin portals are served from. Every other port is public.
const (
	SellerPortalPort = 3002
	AdminPortalPort  = 3003
)

// Storage keys isolating the persisted session of each portal.
const (
	StorageKeyPublic = "auth"
	StorageKeySeller = "auth_seller"
	StorageKeyAdmin  = "auth_admin"
)

// PortalFromPort maps the serving port to its portal. A zero port means the
// serving port is unknown and resolves to the public portal.
func PortalFromPort(port int) Portal {
	switch port {
	case SellerPortalPort:
		return PortalSeller
	case AdminPortalPort:
		return PortalAdmin
	default:
		return PortalPublic
	}
}

// StorageKey returns the persistence namespace of the portal.
func (p Portal) StorageKey() string {
	switch p {
	case PortalSeller:
		return StorageKeySeller
	case PortalAdmin:
		return StorageKeyAdmin
	default:
		return StorageKeyPublic
	}
}

// String returns the string representation of the Portal.
func (p Portal) String() string {
	return string(p)
}

// PortalRequiresAdmin reports whether only administrators may sign in to the portal.
func PortalRequiresAdmin(p Portal) bool {
	return p == PortalSeller || p == PortalAdmin
}

// PortalContext is the read-only portal information of the running process.
type PortalContext struct {
	Port       int
	Portal     Portal
	StorageKey string
}

// NewPortalContext derives the portal context from the serving port.
func NewPortalContext(port int) PortalContext {
	portal := PortalFromPort(port)

	return PortalContext{
		Port:       port,
		Portal:     portal,
		StorageKey: portal.StorageKey(),
	}
}

// Admits reports whether an identity may hold a session on this portal.
// Either the primary type or the secondary account type may carry admin privileges.
func (pc PortalContext) Admits(user *Identity) bool {
	if !PortalRequiresAdmin(pc.Portal) {
		return true
	}
	if user == nil {
		return false
	}

	return HasAdminPrivileges(user.Type) || HasAdminPrivileges(user.AccountType)
}
